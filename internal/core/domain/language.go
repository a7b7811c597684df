package domain

import "strings"

// Language selects the seed roster and the catalog market.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageTurkish  Language = "turkish"
	LanguageKorean   Language = "korean"
	LanguageJapanese Language = "japanese"
	LanguageSpanish  Language = "spanish"
	LanguageArabic   Language = "arabic"
)

// DefaultLanguage is used for missing or unrecognised input.
const DefaultLanguage = LanguageEnglish

// Market is a two-letter catalog region code.
type Market string

// DefaultMarket pairs with DefaultLanguage.
const DefaultMarket Market = "US"

var languageMarkets = map[Language]Market{
	LanguageEnglish:  "US",
	LanguageTurkish:  "TR",
	LanguageKorean:   "KR",
	LanguageJapanese: "JP",
	LanguageSpanish:  "ES",
	LanguageArabic:   "AE",
}

// Languages lists every supported language in a stable order.
var Languages = []Language{
	LanguageEnglish,
	LanguageTurkish,
	LanguageKorean,
	LanguageJapanese,
	LanguageSpanish,
	LanguageArabic,
}

// ParseLanguage normalises raw form input, falling back to DefaultLanguage.
func ParseLanguage(raw string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := languageMarkets[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

// Market returns the catalog market for the language.
func (l Language) Market() Market {
	if m, ok := languageMarkets[l]; ok {
		return m
	}
	return DefaultMarket
}

func (l Language) String() string {
	return string(l)
}

func (m Market) String() string {
	return string(m)
}
