package intent

import "strings"

// Match describes the rule that classified a text.
type Match struct {
	Intent   Intent   `json:"intent"`
	Pattern  string   `json:"pattern,omitempty"`
	Captures []string `json:"captures,omitempty"`
}

// Classify returns the intent of text, or Unknown when no rule matches.
func Classify(text string) Intent {
	return Find(text).Intent
}

// Find is Classify with the winning pattern and its capture groups.
func Find(text string) Match {
	for _, r := range rules {
		for _, p := range r.patterns {
			m := p.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			return Match{
				Intent:   r.intent,
				Pattern:  strings.TrimPrefix(p.String(), "(?i)"),
				Captures: m[1:],
			}
		}
	}
	return Match{Intent: Unknown}
}
