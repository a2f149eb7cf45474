package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"diamant-rouge-catalog/models"
)

func TestNormalizeMetal(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"white", "white gold"},
		{"Rose", "rose gold"},
		{"yellow", "yellow gold"},
		{"platinum", "platinum"},
		{"gold", "gold"},
		{"", "gold"},
		{"  ", "gold"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeMetal(tt.token), "token %q", tt.token)
	}
}

func TestLocalizeMetal(t *testing.T) {
	assert.Equal(t, "or blanc", LocalizeMetal(models.LanguageFR, "white gold"))
	assert.Equal(t, "البلاتين", LocalizeMetal(models.LanguageAR, "Platinum"))
	assert.Equal(t, "white gold", LocalizeMetal(models.LanguageEN, "White Gold"))
	assert.Equal(t, "titanium", LocalizeMetal(models.LanguageFR, "titanium"))
}

func TestMapMetalToVariationValue(t *testing.T) {
	v, ok := MapMetalToVariationValue("rose gold")
	assert.True(t, ok)
	assert.Equal(t, "Rose Gold", v)

	_, ok = MapMetalToVariationValue("platinum")
	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€0.00", FormatPrice(decimal.Zero))
	assert.Equal(t, "€900.00", FormatPrice(decimal.NewFromInt(900)))
	assert.Equal(t, "€12,500.00", FormatPrice(decimal.NewFromInt(12500)))
	assert.Equal(t, "€1,234,567.50", FormatPrice(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-€1,000.00", FormatPrice(decimal.NewFromInt(-1000)))
}
