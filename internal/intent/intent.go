// Package intent maps free text and keypad digits to a closed set of intents
// and pulls scheme names, categories and numbers out of the text.
package intent

// Intent is the classified purpose of an utterance.
type Intent string

const (
	ListSchemes      Intent = "LIST_SCHEMES"
	SearchScheme     Intent = "SEARCH_SCHEME"
	SchemeDetails    Intent = "SCHEME_DETAILS"
	CheckEligibility Intent = "CHECK_ELIGIBILITY"
	CategorySchemes  Intent = "CATEGORY_SCHEMES"
	HowToApply       Intent = "HOW_TO_APPLY"
	Help             Intent = "HELP"
	Greeting         Intent = "GREETING"
	LanguageChange   Intent = "LANGUAGE_CHANGE"
	Unknown          Intent = "UNKNOWN"

	// Keypad-only intents.
	Repeat   Intent = "REPEAT"
	Transfer Intent = "TRANSFER"
	MainMenu Intent = "MAIN_MENU"
)

// Vocabulary lists every intent Classify can return.
func Vocabulary() []Intent {
	return []Intent{
		ListSchemes, SearchScheme, SchemeDetails, CheckEligibility, CategorySchemes,
		HowToApply, Help, Greeting, LanguageChange, Unknown,
	}
}

func (i Intent) String() string {
	return string(i)
}
