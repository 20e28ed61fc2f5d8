// Package i18n holds the UI locales and their message catalog.
package i18n

import (
	"golang.org/x/text/language"
)

// Lang is a supported UI locale
type Lang string

const (
	Vietnamese Lang = "vi"
	English    Lang = "en"
)

// Supported lists the locales in matcher preference order
var Supported = []Lang{Vietnamese, English}

var matcher = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

// Parse returns the locale for code and whether it is supported
func Parse(code string) (Lang, bool) {
	switch Lang(code) {
	case Vietnamese, English:
		return Lang(code), true
	}
	return "", false
}

// Negotiate picks a locale from an Accept-Language header, or fallback when
// nothing in the header matches.
func Negotiate(acceptLanguage string, fallback Lang) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// T translates key into lang, falling back to Vietnamese and then to the key itself
func T(lang Lang, key string) string {
	if msg, ok := catalog[lang][key]; ok {
		return msg
	}
	if msg, ok := catalog[Vietnamese][key]; ok {
		return msg
	}
	return key
}
