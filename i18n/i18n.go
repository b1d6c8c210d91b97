package i18n

import "strings"

// DefaultLanguage is used when no supported language can be detected.
const DefaultLanguage = "ro"

var supported = map[string]bool{"ro": true, "en": true}

// DetectLanguage picks a supported language from an Accept-Language header.
// Unknown or empty headers fall back to Romanian.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		lang := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(lang, "-;"); i >= 0 {
			lang = lang[:i]
		}
		if supported[lang] {
			return lang
		}
	}
	return DefaultLanguage
}

var translations = map[string]map[string]string{
	"contract_title": {
		"ro": "Contract individual de muncă",
		"en": "Individual employment contract",
	},
	"employer": {
		"ro": "Angajator",
		"en": "Employer",
	},
	"employee": {
		"ro": "Salariat",
		"en": "Employee",
	},
	"signature": {
		"ro": "Semnătura",
		"en": "Signature",
	},
	"date": {
		"ro": "Data",
		"en": "Date",
	},
	"legal_basis": {
		"ro": "Încheiat în temeiul Legii nr. 53/2003 - Codul muncii",
		"en": "Concluded under Law no. 53/2003 - the Labour Code",
	},
}

// T resolves a message code for a language. Unknown languages fall back to
// Romanian; unknown codes fall back to the code itself so missing entries
// stay visible instead of rendering empty.
func T(lang, code string) string {
	msgs, ok := translations[code]
	if !ok {
		return code
	}
	if s, ok := msgs[lang]; ok {
		return s
	}
	return msgs[DefaultLanguage]
}
