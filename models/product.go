package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRecord is one generated catalog product ready for persistence
type ProductRecord struct {
	SKU          string          `json:"sku" validate:"required"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Featured     bool            `json:"featured"`
	CategoryID   int             `json:"categoryId" validate:"gt=0"`
	Images       []string        `json:"images" validate:"min=1"`
	Translations []Translation   `json:"translations" validate:"len=3,dive"`
	Variations   []Variation     `json:"variations" validate:"min=1,dive"`
}

// Translation is the language-specific name and description of a product
type Translation struct {
	Language    Language `json:"language" validate:"oneof=en fr ar"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
}

// Variation is a purchasable option of a product
type Variation struct {
	Type            string          `json:"variationType" validate:"required"`
	Value           string          `json:"variationValue" validate:"required"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
	Inventory       int             `json:"inventory" validate:"gte=0"`
}

// Translation returns the translation for lang, if present
func (p *ProductRecord) Translation(lang Language) (Translation, bool) {
	for _, t := range p.Translations {
		if t.Language == lang {
			return t, true
		}
	}
	return Translation{}, false
}

// RunSummary reports the outcome of one catalog generation run
type RunSummary struct {
	RunID        string           `json:"runId"`
	Discovered   int              `json:"discovered"`
	Created      int              `json:"created"`
	Failed       int              `json:"failed"`
	Skipped      int              `json:"skipped"`
	Discarded    int              `json:"discarded"`
	Reclassified int              `json:"reclassified"`
	Featured     map[Category]int `json:"featured"`
	Aborted      bool             `json:"aborted"`
	Duration     time.Duration    `json:"duration"`
}

// NewRunSummary returns a summary with zeroed featured counts
func NewRunSummary(runID string) *RunSummary {
	featured := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		featured[c] = 0
	}
	return &RunSummary{RunID: runID, Featured: featured}
}
