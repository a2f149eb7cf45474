package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamant-rouge-catalog/models"
)

func validRecord() models.ProductRecord {
	return models.ProductRecord{
		SKU:        "R-1",
		BasePrice:  decimal.NewFromInt(4500),
		CategoryID: 1,
		Images:     []string{"/images/products/rings/rings_white_halo_R-1.png"},
		Translations: []models.Translation{
			{Language: models.LanguageEN, Name: "Luna", Description: "d"},
			{Language: models.LanguageFR, Name: "Luna", Description: "d"},
			{Language: models.LanguageAR, Name: "Luna", Description: "d"},
		},
		Variations: []models.Variation{
			{Type: "Size", Value: "48", AdditionalPrice: decimal.Zero, Inventory: 2},
		},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	rec := validRecord()
	assert.NoError(t, Validate(&rec))
}

func TestValidate_MissingTranslation(t *testing.T) {
	rec := validRecord()
	rec.Translations = rec.Translations[:2]

	err := Validate(&rec)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "Translations")
}

func TestValidate_NoVariations(t *testing.T) {
	rec := validRecord()
	rec.Variations = nil
	assert.Error(t, Validate(&rec))
}

func TestValidate_NegativeInventory(t *testing.T) {
	rec := validRecord()
	rec.Variations[0].Inventory = -1
	err := Validate(&rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than or equal to 0")
}

func TestValidate_UnknownLanguage(t *testing.T) {
	rec := validRecord()
	rec.Translations[2].Language = "de"
	err := Validate(&rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one of")
}
