// Package i18n holds the bilingual response templates, IVR prompts and
// language metadata, plus the single fallback policy used everywhere a
// localized value is chosen.
package i18n

const (
	English = "en"
	Hindi   = "hi"

	// DefaultLanguage is the fallback for any missing translation.
	DefaultLanguage = English
)

// Language describes a supported language and its speech settings.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Voice      string `json:"voice"`
	TTSVoice   string `json:"ttsVoice"`
}

var languages = []Language{
	{Code: English, Name: "English", NativeName: "English", Voice: "en-IN", TTSVoice: "Raveena"},
	{Code: Hindi, Name: "Hindi", NativeName: "हिंदी", Voice: "hi-IN", TTSVoice: "Aditi"},
}

// Supported lists languages in display order.
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Get returns the language with the given code.
func Get(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	_, ok := Get(code)
	return ok
}

// VoiceFor returns the speech locale for lang, en-IN when unknown.
func VoiceFor(lang string) string {
	if l, ok := Get(lang); ok {
		return l.Voice
	}
	return "en-IN"
}

// IVRVoiceFor returns the telephony TTS voice for lang.
func IVRVoiceFor(lang string) string {
	if lang == Hindi {
		return "Polly.Aditi"
	}
	return "Polly.Raveena"
}

// Toggle flips between English and Hindi. Anything that is not English
// switches to English.
func Toggle(lang string) string {
	if lang == English {
		return Hindi
	}
	return English
}
