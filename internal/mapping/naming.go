package mapping

import (
	"github.com/viant/tagly/format/text"
)

// keyCases are the case formats accepted for naming.keyCase.
var keyCases = []text.CaseFormat{
	text.CaseFormatLower,
	text.CaseFormatLowerCamel,
	text.CaseFormatLowerUnderscore,
	text.CaseFormatUpperCamel,
}

// KeyCaseFormat resolves a naming.keyCase value. Both the short format
// codes and the names understood by text.NewCaseFormat are accepted.
func KeyCaseFormat(name string) (text.CaseFormat, bool) {
	if name == "" {
		return "", false
	}

	for _, candidate := range []text.CaseFormat{text.CaseFormat(name), text.NewCaseFormat(name)} {
		for _, known := range keyCases {
			if candidate == known {
				return known, true
			}
		}
	}

	return "", false
}
