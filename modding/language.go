package modding

import (
	"fmt"
	"strings"
)

// Language is the game text language a mod targets. It selects which
// language-specific patch archives receive the mod's content.
type Language string

const (
	English            Language = "English"
	Japanese           Language = "Japanese"
	SimplifiedChinese  Language = "Simplified Chinese"
	TraditionalChinese Language = "Traditional Chinese"
)

// DefaultLanguage is used when nothing valid is configured.
const DefaultLanguage = English

var languageCodes = map[Language]string{
	English:            "1",
	Japanese:           "0",
	SimplifiedChinese:  "2",
	TraditionalChinese: "3",
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{English, Japanese, SimplifiedChinese, TraditionalChinese}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	_, ok := languageCodes[l]
	return ok
}

// Code returns the digit the game uses in patch archive names for l.
// Unsupported languages fall back to the default language's code.
func (l Language) Code() string {
	if code, ok := languageCodes[l]; ok {
		return code
	}
	return languageCodes[DefaultLanguage]
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage accepts a display name (case-insensitive) or a language code.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, lang := range Languages() {
		if strings.EqualFold(s, string(lang)) || s == languageCodes[lang] {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}
