package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

func values(vs []models.Variation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Value)
	}
	return out
}

func TestGenerateVariations_Necklaces(t *testing.T) {
	rng := utils.NewRand(3)
	for i := 0; i < 50; i++ {
		vs := GenerateVariations(rng, models.CategoryNecklaces, "gold")
		require.Len(t, vs, 3)
		assert.Equal(t, []string{"42cm", "45cm", "50cm"}, values(vs))
		for _, v := range vs {
			assert.Equal(t, "Length", v.Type)
			if v.Value == "50cm" {
				assert.True(t, v.AdditionalPrice.Equal(decimal.NewFromInt(200)))
			} else {
				assert.True(t, v.AdditionalPrice.IsZero())
			}
		}
	}
}

func TestGenerateVariations_Rings(t *testing.T) {
	vs := GenerateVariations(utils.NewRand(1), models.CategoryRings, "white gold")
	assert.Equal(t, []string{"48", "50", "52", "54", "56"}, values(vs))
	for _, v := range vs {
		assert.Equal(t, "Size", v.Type)
		assert.True(t, v.AdditionalPrice.IsZero())
	}
}

func TestGenerateVariations_Bracelets(t *testing.T) {
	vs := GenerateVariations(utils.NewRand(1), models.CategoryBracelets, "gold")
	assert.Equal(t, []string{"16cm", "18cm", "20cm"}, values(vs))
	assert.True(t, vs[2].AdditionalPrice.Equal(decimal.NewFromInt(100)))
}

func TestGenerateVariations_EarringsPrimaryMetal(t *testing.T) {
	tests := []struct {
		metal   string
		order   []string
		uplifts []int64
	}{
		{"rose gold", []string{"Rose Gold", "White Gold", "Yellow Gold"}, []int64{0, 100, 120}},
		{"yellow gold", []string{"Yellow Gold", "White Gold", "Rose Gold"}, []int64{0, 100, 150}},
		{"white gold", []string{"White Gold", "Rose Gold", "Yellow Gold"}, []int64{0, 150, 120}},
		{"platinum", []string{"White Gold", "Rose Gold", "Yellow Gold"}, []int64{0, 150, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.metal, func(t *testing.T) {
			vs := GenerateVariations(utils.NewRand(9), models.CategoryEarrings, tt.metal)
			assert.Equal(t, tt.order, values(vs))
			for i, v := range vs {
				assert.Equal(t, "Metal", v.Type)
				assert.True(t, v.AdditionalPrice.Equal(decimal.NewFromInt(tt.uplifts[i])), "%s uplift %s", v.Value, v.AdditionalPrice)
			}
		})
	}
}

func TestGenerateVariations_UnknownCategory(t *testing.T) {
	vs := GenerateVariations(utils.NewRand(1), models.Category("brooches"), "gold")
	require.Len(t, vs, 1)
	assert.Equal(t, "Standard", vs[0].Type)
	assert.Equal(t, "One Size", vs[0].Value)
}

func TestGenerateVariations_InventoryRange(t *testing.T) {
	rng := utils.NewRand(11)
	mins := map[string]int{"48": 2, "50": 3, "52": 5, "54": 4, "56": 2}

	for i := 0; i < 200; i++ {
		for _, v := range GenerateVariations(rng, models.CategoryRings, "gold") {
			assert.GreaterOrEqual(t, v.Inventory, mins[v.Value])
			assert.Less(t, v.Inventory, mins[v.Value]+inventorySpread)
		}
	}
}
