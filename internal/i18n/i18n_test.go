package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Fallback resolution
// ==========================

func TestLocalized(t *testing.T) {
	values := map[string]string{English: "hello", Hindi: "नमस्ते"}

	assert.Equal(t, "नमस्ते", Localized(values, Hindi))
	assert.Equal(t, "hello", Localized(values, "fr"))
	assert.Equal(t, "", Localized(map[string]string{Hindi: "x"}, "fr"))
	assert.Equal(t, "", Localized[string](nil, English))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "a", Resolve("a", "b"))
	assert.Equal(t, "b", Resolve("", "b"))
	assert.Equal(t, "", Resolve("", ""))
}

func TestLanguageOr(t *testing.T) {
	assert.Equal(t, Hindi, LanguageOr(Hindi, English))
	assert.Equal(t, Hindi, LanguageOr("", Hindi))
	assert.Equal(t, English, LanguageOr("fr", "de"))
}

// ==========================
// Templates
// ==========================

func TestResponse(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		lang   string
		params Params
		want   string
	}{
		{
			name:   "english with count",
			key:    KeySchemeList,
			lang:   English,
			params: Params{"count": 12},
			want:   "I found 12 schemes. Here are the top ones:",
		},
		{
			name:   "hindi with two params",
			key:    KeyCategorySchemes,
			lang:   Hindi,
			params: Params{"count": 2, "category": "agriculture"},
			want:   "agriculture में 2 योजनाएं हैं:",
		},
		{
			name: "unresolved param stays literal",
			key:  KeySchemeList,
			lang: English,
			want: "I found {count} schemes. Here are the top ones:",
		},
		{
			name:   "unknown language falls back to english",
			key:    KeyAskAge,
			lang:   "ta",
			params: nil,
			want:   "What is your age?",
		},
		{
			name: "unknown key is empty",
			key:  Key("nope"),
			lang: English,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Response(tt.key, tt.lang, tt.params))
		})
	}
}

func TestInterpolate_ReplacesEveryOccurrence(t *testing.T) {
	got := Interpolate("{n} and {n} but not {m}", Params{"n": 3})
	assert.Equal(t, "3 and 3 but not {m}", got)
}

func TestLanguageChangedTemplates(t *testing.T) {
	assert.Equal(t, "भाषा हिंदी में बदल दी गई है। मैं आपकी कैसे मदद कर सकता हूं?", Response(KeyLanguageChanged, Hindi, nil))
	assert.Equal(t, "Language changed to English. How can I help you?", Response(KeyLanguageChanged, English, nil))
}

func TestAskKey(t *testing.T) {
	k, ok := AskKey("hasLand")
	assert.True(t, ok)
	assert.Equal(t, KeyAskLand, k)

	_, ok = AskKey("gender")
	assert.False(t, ok)
}

// ==========================
// Languages, formatting, prompts
// ==========================

func TestLanguages(t *testing.T) {
	langs := Supported()
	assert.Len(t, langs, 2)
	assert.Equal(t, English, langs[0].Code)

	assert.Equal(t, "hi-IN", VoiceFor(Hindi))
	assert.Equal(t, "en-IN", VoiceFor("xx"))
	assert.Equal(t, "Polly.Aditi", IVRVoiceFor(Hindi))
	assert.Equal(t, "Polly.Raveena", IVRVoiceFor(English))

	assert.Equal(t, Hindi, Toggle(English))
	assert.Equal(t, English, Toggle(Hindi))
	assert.Equal(t, English, Toggle("fr"))
}

func TestFormatSchemeDetails(t *testing.T) {
	d := SpokenDetails{
		Name:               "PM-KISAN",
		ShortDescription:   "Income support for farmers",
		BenefitDescription: "₹6,000 per year",
		Helpline:           "155261",
	}

	assert.Equal(t,
		"PM-KISAN. Income support for farmers. This scheme provides ₹6,000 per year. For more information, call 155261.",
		FormatSchemeDetails(d, English))
	assert.Equal(t,
		"PM-KISAN। Income support for farmers। इस योजना में ₹6,000 per year का लाभ मिलता है। अधिक जानकारी के लिए 155261 पर कॉल करें।",
		FormatSchemeDetails(d, Hindi))
}

func TestPrompts(t *testing.T) {
	p, ok := Prompts("mainMenu", Hindi)
	assert.True(t, ok)
	assert.Equal(t, "मुख्य मेनू", p.Main)
	assert.Len(t, p.Options, 4)

	p, ok = Prompts("welcome", "fr")
	assert.True(t, ok)
	assert.Equal(t, "Welcome to HIMAYA", p.Main)

	_, ok = Prompts("checkout", English)
	assert.False(t, ok)
}
