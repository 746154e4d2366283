package intent

import "regexp"

type rule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// rules are evaluated in declaration order; the first matching pattern wins.
// New intents are added here, nowhere else.
var rules = compileRules([]struct {
	intent   Intent
	patterns []string
}{
	{ListSchemes, []string{
		`what (schemes?|yojana|योजना)`,
		`show (me )?(all )?(schemes?|yojana)`,
		`available (schemes?|yojana)`,
		`list (schemes?|yojana)`,
		`browse (schemes?|yojana)`,
		`योजनाएं (दिखाओ|बताओ)`,
		`कौन सी योजनाएं`,
	}},
	{SearchScheme, []string{
		`search for (.+)`,
		`find (.+) scheme`,
		`(.+) के बारे में बताओ`,
		`tell me about (.+)`,
	}},
	{SchemeDetails, []string{
		`details? (of|about|for) (.+)`,
		`more (about|on) (.+)`,
		`what is (.+)`,
		`(.+) क्या है`,
		`(.+) scheme`,
	}},
	{CheckEligibility, []string{
		`check (my )?eligibility`,
		`am i eligible`,
		`eligibility (check|verify)`,
		`पात्रता (जांचें|देखें)`,
		`क्या मैं पात्र हूं`,
		`eligible for (.+)`,
	}},
	{CategorySchemes, []string{
		`schemes? (for|in|about) (farmers?|agriculture|कृषि|किसान)`,
		`schemes? (for|in|about) (health|healthcare|स्वास्थ्य)`,
		`schemes? (for|in|about) (education|शिक्षा)`,
		`schemes? (for|in|about) (housing|आवास|घर)`,
		`schemes? (for|in|about) (women|महिला)`,
		`(farmer|किसान) schemes?`,
		`(health|स्वास्थ्य) schemes?`,
	}},
	{HowToApply, []string{
		`how (to|do i) apply`,
		`apply for (.+)`,
		`application process`,
		`आवेदन कैसे करें`,
		`कैसे आवेदन करूं`,
	}},
	{Help, []string{
		`help`,
		`मदद`,
		`what can you do`,
		`options`,
		`menu`,
	}},
	{Greeting, []string{
		`^(hello|hi|hey|namaste|नमस्ते)`,
		`good (morning|afternoon|evening)`,
	}},
	{LanguageChange, []string{
		`change language`,
		`speak (in )?(hindi|english)`,
		`हिंदी में बोलो`,
		`switch to (hindi|english)`,
	}},
})

func compileRules(table []struct {
	intent   Intent
	patterns []string
}) []rule {
	out := make([]rule, 0, len(table))
	for _, entry := range table {
		r := rule{intent: entry.intent}
		for _, p := range entry.patterns {
			r.patterns = append(r.patterns, regexp.MustCompile(`(?i)`+p))
		}
		out = append(out, r)
	}
	return out
}
