package catalog

import (
	"strings"
	"sync"

	"diamant-rouge-catalog/models"
)

// DefaultFeaturedCaps is the per-category limit on featured products
var DefaultFeaturedCaps = map[models.Category]int{
	models.CategoryRings:     3,
	models.CategoryNecklaces: 2,
	models.CategoryBracelets: 2,
	models.CategoryEarrings:  2,
}

var braceletTerms = []string{"diamond", "sapphire", "emerald", "ruby", "chain", "baguette", "tennis", "medallion"}

// FeaturedCounter tracks how many products were featured per category in one run
type FeaturedCounter struct {
	mu     sync.Mutex
	caps   map[models.Category]int
	counts map[models.Category]int
}

// NewFeaturedCounter creates a counter with the given caps, DefaultFeaturedCaps when nil.
// Categories without a cap can never be featured.
func NewFeaturedCounter(caps map[models.Category]int) *FeaturedCounter {
	if caps == nil {
		caps = DefaultFeaturedCaps
	}
	return &FeaturedCounter{
		caps:   caps,
		counts: make(map[models.Category]int),
	}
}

// Select decides whether a product with the given search text is featured.
// It consumes a slot when it returns true.
func (c *FeaturedCounter) Select(category models.Category, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.counts[category] >= c.caps[category] {
		return false
	}
	if !IsFeatureEligible(category, text) {
		return false
	}
	c.counts[category]++
	return true
}

// Count returns the number of featured products in category
func (c *FeaturedCounter) Count(category models.Category) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[category]
}

// Snapshot returns a copy of the per-category counts
func (c *FeaturedCounter) Snapshot() map[models.Category]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[models.Category]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// IsFeatureEligible evaluates the premium-feature test for category
func IsFeatureEligible(category models.Category, text string) bool {
	text = strings.ToLower(text)
	has := func(term string) bool { return strings.Contains(text, term) }

	if category == models.CategoryBracelets {
		for _, term := range braceletTerms {
			if has(term) {
				return true
			}
		}
		return false
	}

	return (has("diamond") && (has("halo") || has("cluster"))) ||
		has("sapphire") ||
		has("emerald") ||
		has("ruby") ||
		has("platinum") ||
		has("three stone") ||
		(has("solitaire") && has("diamond"))
}
