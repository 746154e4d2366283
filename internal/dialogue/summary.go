package dialogue

import (
	"fmt"
	"strings"

	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/i18n"
)

// SummarizeEligibility renders evaluation results as a short spoken or SMS
// text. At most limit schemes are named; limit <= 0 names all of them. When
// the profile left fields unknown, the prompt for the first one is appended.
func SummarizeEligibility(results []eligibility.Result, lang string, limit int) string {
	if len(results) == 0 {
		return i18n.Response(i18n.KeyNoEligibleSchemes, lang, nil)
	}

	shown := results
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	lines := []string{i18n.Response(i18n.KeyEligibilityResult, lang, i18n.Params{"count": len(results)})}
	for i, r := range shown {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Name))
	}

	if field := firstMissing(results); field != "" {
		if key, ok := i18n.AskKey(field); ok {
			lines = append(lines, i18n.Response(key, lang, nil))
		}
	}
	return strings.Join(lines, "\n")
}

func firstMissing(results []eligibility.Result) string {
	for _, r := range results {
		if len(r.MissingInfo) > 0 {
			return r.MissingInfo[0]
		}
	}
	return ""
}
