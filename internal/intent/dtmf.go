package intent

var dtmf = map[string]Intent{
	"1": ListSchemes,
	"2": CheckEligibility,
	"3": Help,
	"4": LanguageChange,
	"0": Repeat,
	"*": Transfer,
	"#": MainMenu,
}

// FromDTMF maps a keypad entry to an intent. Anything outside the table is
// Unknown.
func FromDTMF(digits string) Intent {
	if in, ok := dtmf[digits]; ok {
		return in
	}
	return Unknown
}
