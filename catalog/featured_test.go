package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diamant-rouge-catalog/models"
)

func TestIsFeatureEligible(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		text     string
		want     bool
	}{
		{"ring diamond halo", models.CategoryRings, "white gold halo diamond", true},
		{"ring diamond cluster", models.CategoryRings, "gold cluster diamond", true},
		{"ring plain diamond", models.CategoryRings, "gold band diamond", false},
		{"ring solitaire diamond", models.CategoryRings, "gold solitaire diamond", true},
		{"ring solitaire alone", models.CategoryRings, "gold solitaire", false},
		{"ring platinum metal", models.CategoryRings, "platinum band", true},
		{"necklace three stone", models.CategoryNecklaces, "gold three stone", true},
		{"earrings sapphire", models.CategoryEarrings, "rose gold drop sapphire", true},
		{"earrings chain is not enough", models.CategoryEarrings, "gold chain", false},
		{"bracelet chain", models.CategoryBracelets, "gold chain", true},
		{"bracelet plain diamond", models.CategoryBracelets, "gold diamond", true},
		{"bracelet tennis", models.CategoryBracelets, "white gold tennis", true},
		{"bracelet medallion", models.CategoryBracelets, "gold medallion", true},
		{"bracelet platinum", models.CategoryBracelets, "platinum bangle", false},
		{"bracelet classic", models.CategoryBracelets, "gold classic", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFeatureEligible(tt.category, tt.text))
		})
	}
}

func TestFeaturedCounter_EnforcesCaps(t *testing.T) {
	counter := NewFeaturedCounter(nil)

	for _, category := range models.Categories {
		featured := 0
		for i := 0; i < 10; i++ {
			if counter.Select(category, "platinum sapphire chain diamond halo") {
				featured++
			}
		}
		assert.Equal(t, DefaultFeaturedCaps[category], featured, "category %s", category)
		assert.Equal(t, DefaultFeaturedCaps[category], counter.Count(category))
	}
}

func TestFeaturedCounter_IneligibleDoesNotConsume(t *testing.T) {
	counter := NewFeaturedCounter(nil)

	assert.False(t, counter.Select(models.CategoryRings, "gold classic"))
	assert.Equal(t, 0, counter.Count(models.CategoryRings))
	assert.True(t, counter.Select(models.CategoryRings, "gold ruby"))
	assert.Equal(t, 1, counter.Count(models.CategoryRings))
}

func TestFeaturedCounter_UnknownCategoryNeverFeatured(t *testing.T) {
	counter := NewFeaturedCounter(nil)
	assert.False(t, counter.Select(models.Category("brooches"), "platinum diamond halo"))
}

func TestFeaturedCounter_OrderDetermined(t *testing.T) {
	texts := []string{"gold ruby", "gold classic", "gold emerald", "gold sapphire", "platinum band", "gold ruby"}
	skus := []string{"R-1", "R-2", "R-3", "R-4", "R-5", "R-6"}

	run := func() []string {
		counter := NewFeaturedCounter(nil)
		var out []string
		for i, text := range texts {
			if counter.Select(models.CategoryRings, text) {
				out = append(out, skus[i])
			}
		}
		return out
	}

	first := run()
	assert.Equal(t, []string{"R-1", "R-3", "R-4"}, first)
	assert.Equal(t, first, run())
}

func TestFeaturedCounter_Snapshot(t *testing.T) {
	counter := NewFeaturedCounter(map[models.Category]int{models.CategoryEarrings: 1})
	counter.Select(models.CategoryEarrings, "gold emerald")

	snap := counter.Snapshot()
	snap[models.CategoryEarrings] = 99
	assert.Equal(t, 1, counter.Count(models.CategoryEarrings))
}
