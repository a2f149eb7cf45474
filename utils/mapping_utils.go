package utils

import (
	"strings"

	"diamant-rouge-catalog/models"
)

var metalMap = map[string]string{
	"white":  "white gold",
	"rose":   "rose gold",
	"yellow": "yellow gold",
}

var stopwords = map[string]bool{
	"and":  true,
	"with": true,
	"in":   true,
	"of":   true,
}

// NormalizeMetal maps the metal token to a metal name. Known tones get a
// "gold" suffix, anything else passes through lower-cased.
func NormalizeMetal(token string) string {
	metalLower := strings.ToLower(strings.TrimSpace(token))
	if metalLower == "" {
		return defaultMetal
	}
	if metal, exists := metalMap[metalLower]; exists {
		return metal
	}
	return metalLower
}

// FeatureTokens lower-cases tokens, turns hyphens into spaces and drops
// stopwords and empty tokens.
func FeatureTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(t, "-", " ")))
		if t == "" || stopwords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}

var localizedMetals = map[models.Language]map[string]string{
	models.LanguageFR: {
		"white gold":  "or blanc",
		"rose gold":   "or rose",
		"yellow gold": "or jaune",
		"gold":        "or",
		"platinum":    "platine",
		"silver":      "argent",
	},
	models.LanguageAR: {
		"white gold":  "الذهب الأبيض",
		"rose gold":   "الذهب الوردي",
		"yellow gold": "الذهب الأصفر",
		"gold":        "الذهب",
		"platinum":    "البلاتين",
		"silver":      "الفضة",
	},
}

// LocalizeMetal returns the metal name in lang, falling back to the input
func LocalizeMetal(lang models.Language, metal string) string {
	metalLower := strings.ToLower(strings.TrimSpace(metal))
	if names, ok := localizedMetals[lang]; ok {
		if name, exists := names[metalLower]; exists {
			return name
		}
	}
	return metalLower
}

var variationMetals = map[string]string{
	"white gold":  "White Gold",
	"rose gold":   "Rose Gold",
	"yellow gold": "Yellow Gold",
}

// MapMetalToVariationValue maps a normalized metal to its variation label.
// The second result is false for metals that are not offered as variations.
func MapMetalToVariationValue(metal string) (string, bool) {
	value, exists := variationMetals[strings.ToLower(strings.TrimSpace(metal))]
	return value, exists
}
