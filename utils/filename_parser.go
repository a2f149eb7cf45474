package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"diamant-rouge-catalog/models"
)

const (
	defaultMetal  = "gold"
	defaultDesign = "classic"
)

var extRegex = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)

// DecomposeFilename parses a filename following the pattern:
// <category>_<metal>_<design-and-feature-tokens...>_<sku>.<ext>
// Example: rings_white_solitaire_diamond_ROUGE-001.png
//
// Parsing is best effort. Missing parts fall back to defaults and no error is
// ever returned. The category token is taken from the caller since the
// classifier has already resolved it.
func DecomposeFilename(category models.Category, filename string) models.ParsedAttributes {
	base := extRegex.ReplaceAllString(filepath.Base(filename), "")
	parts := strings.Split(base, "_")

	attrs := models.ParsedAttributes{
		Category: category,
		Metal:    defaultMetal,
		Design:   defaultDesign,
	}

	// Single token: nothing but a SKU-ish stem
	if len(parts) < 2 {
		attrs.SKU = base
		return attrs
	}

	attrs.SKU = parts[len(parts)-1]
	// parts[0] is the category tag, the last part the SKU
	middle := parts[1 : len(parts)-1]
	if len(middle) == 0 {
		return attrs
	}

	// Exactly one metal token; everything after it is design and features
	attrs.Metal = NormalizeMetal(middle[0])
	tokens := FeatureTokens(middle[1:])
	if len(tokens) > 0 {
		attrs.Design = tokens[0]
		attrs.Features = strings.Join(tokens, " ")
	}

	return attrs
}

// CategoryPrefix returns the lower-cased substring before the first underscore
func CategoryPrefix(filename string) string {
	prefix, _, _ := strings.Cut(filepath.Base(filename), "_")
	return strings.ToLower(prefix)
}

// IsImageFile reports whether filename has a supported image extension
func IsImageFile(filename string) bool {
	return extRegex.MatchString(filename)
}
