package i18n

// Resolve returns primary unless it is empty.
func Resolve(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// Localized picks values[lang], then values[DefaultLanguage], then the zero
// value. It never panics on a missing default; callers see empty fields.
func Localized[V any](values map[string]V, lang string) V {
	if v, ok := values[lang]; ok {
		return v
	}
	if v, ok := values[DefaultLanguage]; ok {
		return v
	}
	var zero V
	return zero
}

// LanguageOr returns the first supported code among lang and fallback,
// or DefaultLanguage.
func LanguageOr(lang, fallback string) string {
	switch {
	case IsSupported(lang):
		return lang
	case IsSupported(fallback):
		return fallback
	default:
		return DefaultLanguage
	}
}
