package catalog

import (
	"github.com/shopspring/decimal"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

// inventorySpread is the exclusive upper bound of the random stock added per entry
const inventorySpread = 5

type variationSpec struct {
	value        string
	uplift       int64
	minInventory int
}

type variationTable struct {
	kind    string
	entries []variationSpec
}

var variationTables = map[models.Category]variationTable{
	models.CategoryRings: {kind: "Size", entries: []variationSpec{
		{"48", 0, 2}, {"50", 0, 3}, {"52", 0, 5}, {"54", 0, 4}, {"56", 0, 2},
	}},
	models.CategoryBracelets: {kind: "Length", entries: []variationSpec{
		{"16cm", 0, 5}, {"18cm", 0, 7}, {"20cm", 100, 3},
	}},
	models.CategoryNecklaces: {kind: "Length", entries: []variationSpec{
		{"42cm", 0, 5}, {"45cm", 0, 7}, {"50cm", 200, 3},
	}},
	models.CategoryEarrings: {kind: "Metal", entries: []variationSpec{
		{"White Gold", 100, 5}, {"Rose Gold", 150, 3}, {"Yellow Gold", 120, 4},
	}},
}

var defaultVariation = variationTable{kind: "Standard", entries: []variationSpec{{"One Size", 0, 5}}}

// GenerateVariations returns the purchasable options for a product.
// Earrings list the product's own metal first at no extra cost.
func GenerateVariations(rng utils.Rand, category models.Category, metal string) []models.Variation {
	table, ok := variationTables[category]
	if !ok {
		table = defaultVariation
	}

	entries := table.entries
	if category == models.CategoryEarrings {
		entries = primaryMetalFirst(entries, metal)
	}

	variations := make([]models.Variation, 0, len(entries))
	for _, e := range entries {
		variations = append(variations, models.Variation{
			Type:            table.kind,
			Value:           e.value,
			AdditionalPrice: decimal.NewFromInt(e.uplift),
			Inventory:       e.minInventory + rng.IntN(inventorySpread),
		})
	}
	return variations
}

func primaryMetalFirst(entries []variationSpec, metal string) []variationSpec {
	primary, ok := utils.MapMetalToVariationValue(metal)
	if !ok {
		primary = "White Gold"
	}

	out := make([]variationSpec, 0, len(entries))
	for _, e := range entries {
		if e.value == primary {
			e.uplift = 0
			out = append([]variationSpec{e}, out...)
			continue
		}
		out = append(out, e)
	}
	return out
}
