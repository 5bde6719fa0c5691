package i18n

// ===========================================================================
// Locale resolution
// Priority: explicit ?lang= > session value > geo-ip country.
// ===========================================================================

const (
	LangZh = "zh"
	LangEn = "en"
)

// chineseCountries ISO codes whose visitors default to Chinese
var chineseCountries = map[string]bool{
	"CN": true,
	"TW": true,
	"HK": true,
	"MO": true,
}

// IsSupported reports whether lang has a message catalog
func IsSupported(lang string) bool {
	return lang == LangZh || lang == LangEn
}

// LangForCountry maps a geo-ip country code to the default language
func LangForCountry(country string) string {
	if chineseCountries[country] {
		return LangZh
	}
	return LangEn
}

// Resolve picks the language for a request.
// queryLang overwrites the session value even when unsupported; unsupported
// values then fall back to English. Geo-ip is consulted only when neither is
// set. A lookup failure means Chinese for this request only, it is not persisted.
// persist is true when the returned value differs from sessionLang.
func Resolve(queryLang, sessionLang, country string, geoErr error) (lang string, persist bool) {
	switch {
	case queryLang != "":
		lang = queryLang
	case sessionLang != "":
		lang = sessionLang
	case geoErr != nil:
		return LangZh, false
	default:
		lang = LangForCountry(country)
	}

	if !IsSupported(lang) {
		lang = LangEn
	}
	return lang, lang != sessionLang
}
