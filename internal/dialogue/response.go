package dialogue

import "himaya-assistant/internal/intent"

// Suggested next steps that are not classifier intents.
const (
	ActionCollectAge = "COLLECT_AGE"
)

// Context is the caller-owned conversation state passed on every turn. The
// generator only reads it.
type Context map[string]interface{}

// String returns the value at key when it is a non-empty string.
func (c Context) String(key string) string {
	if c == nil {
		return ""
	}
	s, _ := c[key].(string)
	return s
}

const (
	ContextCurrentScheme = "currentScheme"
	ContextCallID        = "callId"
	ContextEvent         = "event"
)

// Response is one assistant turn.
type Response struct {
	Intent   intent.Intent `json:"intent"`
	Text     string        `json:"text"`
	Data     interface{}   `json:"data,omitempty"`
	FollowUp bool          `json:"followUp"`
	Actions  []string      `json:"actions"`
	NextStep string        `json:"nextStep,omitempty"`
	Language string        `json:"language,omitempty"`
}

// ApplyInfo is the payload of a how-to-apply turn.
type ApplyInfo struct {
	Documents []string `json:"documents"`
	Helpline  string   `json:"helpline"`
}

func actions(in ...intent.Intent) []string {
	out := make([]string, 0, len(in))
	for _, i := range in {
		out = append(out, string(i))
	}
	return out
}
