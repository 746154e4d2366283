package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Classify
// ==========================

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"what schemes are available", ListSchemes},
		{"Show me all schemes", ListSchemes},
		{"browse yojana", ListSchemes},
		{"योजनाएं दिखाओ", ListSchemes},
		{"कौन सी योजनाएं हैं", ListSchemes},
		{"search for pension", SearchScheme},
		{"tell me about ayushman", SearchScheme},
		{"पीएम किसान के बारे में बताओ", SearchScheme},
		{"details about ayushman", SchemeDetails},
		{"what is mudra", SchemeDetails},
		{"ujjwala scheme", SchemeDetails},
		{"check my eligibility", CheckEligibility},
		{"Am I eligible", CheckEligibility},
		{"पात्रता जांचें", CheckEligibility},
		{"schemes for farmers", CategorySchemes},
		{"schemes for health", CategorySchemes},
		{"schemes about women", CategorySchemes},
		{"how do i apply", HowToApply},
		{"आवेदन कैसे करें", HowToApply},
		{"help", Help},
		{"मदद चाहिए", Help},
		{"what can you do", Help},
		{"Hello there", Greeting},
		{"namaste", Greeting},
		{"good evening", Greeting},
		{"change language", LanguageChange},
		{"switch to hindi", LanguageChange},
		{"हिंदी में बोलो", LanguageChange},
		{"the weather is nice", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	// Matches both the list rule and the details rule; list is declared first.
	assert.Equal(t, ListSchemes, Classify("what schemes are there for the ujjwala scheme"))
	// "farmer schemes" also ends in "scheme", so the detail rule wins over the category rule.
	assert.Equal(t, SchemeDetails, Classify("farmer schemes"))
}

func TestClassify_IsTotalAndDeterministic(t *testing.T) {
	vocab := make(map[Intent]bool)
	for _, in := range Vocabulary() {
		vocab[in] = true
	}

	inputs := []string{"", " ", "???", "1234", "hello", "क्या", "SCHEMES", "tell me about", "apply for ujjwala", "menu"}
	for _, text := range inputs {
		first := Classify(text)
		assert.True(t, vocab[first], "intent %q for %q is outside the vocabulary", first, text)
		assert.Equal(t, first, Classify(text))
	}
}

func TestFind(t *testing.T) {
	m := Find("details about ayushman")
	assert.Equal(t, SchemeDetails, m.Intent)
	assert.Equal(t, `details? (of|about|for) (.+)`, m.Pattern)
	assert.Equal(t, []string{"about", "ayushman"}, m.Captures)

	m = Find("nothing here")
	assert.Equal(t, Unknown, m.Intent)
	assert.Empty(t, m.Pattern)
	assert.Nil(t, m.Captures)
}

// ==========================
// Extract
// ==========================

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		intent Intent
		want   Entities
	}{
		{
			name:   "scheme detail",
			text:   "details about ayushman",
			intent: SchemeDetails,
			want:   Entities{SchemeName: "ayushman", Query: "ayushman"},
		},
		{
			name:   "hyphen and space variants normalize",
			text:   "tell me about PM Kisan",
			intent: SearchScheme,
			want:   Entities{SchemeName: "pm-kisan", Query: "PM Kisan"},
		},
		{
			name:   "first alias in table order wins",
			text:   "compare sukanya and ayushman",
			intent: Unknown,
			want:   Entities{SchemeName: "ayushman"},
		},
		{
			name:   "hindi alias",
			text:   "उज्ज्वला क्या है",
			intent: SchemeDetails,
			want:   Entities{SchemeName: "ujjwala", Query: "उज्ज्वला"},
		},
		{
			name:   "category keyword",
			text:   "schemes for Farmers",
			intent: CategorySchemes,
			want:   Entities{Category: "agriculture"},
		},
		{
			name:   "hindi category keyword",
			text:   "महिला योजनाएं",
			intent: Unknown,
			want:   Entities{Category: "women-child"},
		},
		{
			name:   "first keyword in table order wins",
			text:   "health schemes for farmers",
			intent: CategorySchemes,
			want:   Entities{Category: "agriculture"},
		},
		{
			name:   "numbers in order",
			text:   "I am 45 and earn 30000 a year",
			intent: Unknown,
			want:   Entities{Numbers: []int{45, 30000}},
		},
		{
			name:   "nothing to extract",
			text:   "hello",
			intent: Greeting,
			want:   Entities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text, tt.intent))
		})
	}
}

func TestExtract_QueryOnlyForSearchIntents(t *testing.T) {
	e := Extract("apply for ujjwala", HowToApply)
	assert.Equal(t, "ujjwala", e.SchemeName)
	assert.Empty(t, e.Query)
}

// ==========================
// DTMF
// ==========================

func TestFromDTMF(t *testing.T) {
	tests := map[string]Intent{
		"1":  ListSchemes,
		"2":  CheckEligibility,
		"3":  Help,
		"4":  LanguageChange,
		"0":  Repeat,
		"*":  Transfer,
		"#":  MainMenu,
		"9":  Unknown,
		"":   Unknown,
		"12": Unknown,
	}

	for digits, want := range tests {
		assert.Equal(t, want, FromDTMF(digits), "digits %q", digits)
	}
}
