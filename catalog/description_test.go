package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

var halo = models.ParsedAttributes{
	Category: models.CategoryRings,
	Metal:    "white gold",
	Design:   "halo",
	Features: "halo diamond",
	SKU:      "R-1",
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func TestComposeDescription_English(t *testing.T) {
	d := ComposeDescription(utils.NewRand(5), models.LanguageEN, halo)
	assert.True(t, startsWithAny(d, luxuryAdjectives[models.LanguageEN]), d)
	assert.Contains(t, d, "white gold jewelry with a halo design showcasing halo diamond.")
}

func TestComposeDescription_FrenchLocalizesMetal(t *testing.T) {
	d := ComposeDescription(utils.NewRand(5), models.LanguageFR, halo)
	assert.True(t, startsWithAny(d, luxuryAdjectives[models.LanguageFR]), d)
	assert.Contains(t, d, "bijou en or blanc avec un design halo")
}

func TestComposeDescription_Arabic(t *testing.T) {
	d := ComposeDescription(utils.NewRand(5), models.LanguageAR, halo)
	assert.True(t, strings.HasPrefix(d, "مجوهرات الذهب الأبيض"), d)
	assert.Contains(t, d, "halo diamond")
}

func TestComposeDescription_EmptyFeatures(t *testing.T) {
	attrs := models.ParsedAttributes{Category: models.CategoryRings, Metal: "gold", Design: "classic"}
	for _, lang := range models.Languages {
		d := ComposeDescription(utils.NewRand(2), lang, attrs)
		assert.Contains(t, d, emptyFeatures[lang])
	}
}

func TestComposeDescription_SeededIsDeterministic(t *testing.T) {
	a := ComposeDescription(utils.NewRand(99), models.LanguageEN, halo)
	b := ComposeDescription(utils.NewRand(99), models.LanguageEN, halo)
	assert.Equal(t, a, b)
}
