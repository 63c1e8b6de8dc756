package render

import (
	"golang.org/x/text/language"
)

// SupportedLocales are the locales the catalog formats prices for.
var SupportedLocales = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var localeMatcher = language.NewMatcher(SupportedLocales)

// MatchLocale picks a supported locale from an Accept-Language header value.
// An empty or unparsable header yields fallback.
func MatchLocale(acceptLanguage string, fallback language.Tag) language.Tag {
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return SupportedLocales[idx]
}
