package models

import "strings"

// Category is a jewelry category slug
type Category string

const (
	CategoryRings     Category = "rings"
	CategoryBracelets Category = "bracelets"
	CategoryNecklaces Category = "necklaces"
	CategoryEarrings  Category = "earrings"
)

// Categories lists the known categories in processing order
var Categories = []Category{CategoryRings, CategoryBracelets, CategoryNecklaces, CategoryEarrings}

// ParseCategory returns the category matching tag, case-insensitive
func ParseCategory(tag string) (Category, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, c := range Categories {
		if string(c) == tag {
			return c, true
		}
	}
	return "", false
}

// Language is a supported catalog language
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageAR Language = "ar"
)

// Languages lists every language a product must be translated into
var Languages = []Language{LanguageEN, LanguageFR, LanguageAR}
