package pricing

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"diamant-rouge-catalog/models"
	"diamant-rouge-catalog/utils"
)

// PricingConfig represents the pricing configuration structure
type PricingConfig struct {
	Currency string          `json:"currency"`
	Bands    map[string]Band `json:"bands"`
	Fallback Band            `json:"fallback"`
	Rules    []Rule          `json:"rules"`
}

// Band is the [Min, Max] range a base price is drawn from
type Band struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Rule adds Premium when the product text contains every AllOf term and,
// if AnyOf is set, at least one AnyOf term. Within a non-empty Group only
// the highest-priority matching rule applies.
type Rule struct {
	ID       string   `json:"id"`
	Active   bool     `json:"active"`
	Priority int      `json:"priority"`
	Group    string   `json:"group,omitempty"`
	AllOf    []string `json:"allOf,omitempty"`
	AnyOf    []string `json:"anyOf,omitempty"`
	Premium  int64    `json:"premium"`
}

// Quote is the result of a price calculation
type Quote struct {
	Base         decimal.Decimal `json:"base"`
	Premium      decimal.Decimal `json:"premium"`
	Total        decimal.Decimal `json:"total"`
	AppliedRules []string        `json:"appliedRules"`
}

// Engine handles price calculations based on a PricingConfig
type Engine struct {
	config *PricingConfig
}

// DefaultConfig returns the built-in bands and premium table
func DefaultConfig() *PricingConfig {
	return &PricingConfig{
		Currency: "EUR",
		Bands: map[string]Band{
			string(models.CategoryRings):     {Min: 2500, Max: 12000},
			string(models.CategoryBracelets): {Min: 2000, Max: 6000},
			string(models.CategoryNecklaces): {Min: 2500, Max: 9000},
			string(models.CategoryEarrings):  {Min: 1200, Max: 5000},
		},
		Fallback: Band{Min: 1000, Max: 5000},
		Rules: []Rule{
			{ID: "diamond-cluster", Active: true, Priority: 300, Group: "diamond", AllOf: []string{"diamond", "cluster"}, Premium: 3000},
			{ID: "diamond-halo", Active: true, Priority: 290, Group: "diamond", AllOf: []string{"diamond", "halo"}, Premium: 2500},
			{ID: "diamond", Active: true, Priority: 280, Group: "diamond", AllOf: []string{"diamond"}, Premium: 1500},
			{ID: "sapphire", Active: true, Priority: 200, AllOf: []string{"sapphire"}, Premium: 1200},
			{ID: "emerald", Active: true, Priority: 200, AllOf: []string{"emerald"}, Premium: 1300},
			{ID: "ruby", Active: true, Priority: 200, AllOf: []string{"ruby"}, Premium: 1400},
			{ID: "pearl", Active: true, Priority: 200, AllOf: []string{"pearl"}, Premium: 600},
			{ID: "platinum", Active: true, Priority: 100, AllOf: []string{"platinum"}, Premium: 1000},
			{ID: "white-gold", Active: true, Priority: 100, AllOf: []string{"white gold"}, Premium: 400},
			{ID: "rose-gold", Active: true, Priority: 100, AllOf: []string{"rose gold"}, Premium: 300},
			{ID: "yellow-gold", Active: true, Priority: 100, AllOf: []string{"yellow gold"}, Premium: 300},
			{ID: "pave", Active: true, Priority: 50, AnyOf: []string{"pavé", "pave"}, Premium: 800},
			{ID: "baguette", Active: true, Priority: 50, AllOf: []string{"baguette"}, Premium: 700},
			{ID: "eternity", Active: true, Priority: 50, AllOf: []string{"eternity"}, Premium: 1200},
			{ID: "three-stone", Active: true, Priority: 50, AllOf: []string{"three stone"}, Premium: 1800},
			{ID: "solitaire", Active: true, Priority: 50, AllOf: []string{"solitaire"}, Premium: 900},
		},
	}
}

// NewEngine creates a pricing engine from config, DefaultConfig when nil
func NewEngine(config *PricingConfig) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	// Sort rules by priority (highest first), keeping table order for ties
	rules := make([]Rule, len(config.Rules))
	copy(rules, config.Rules)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	cfg := *config
	cfg.Rules = rules

	return &Engine{config: &cfg}, nil
}

// LoadEngine reads a JSON pricing config from configPath
func LoadEngine(configPath string) (*Engine, error) {
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	var config PricingConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	engine, err := NewEngine(&config)
	if err != nil {
		return nil, err
	}

	slog.Info("✅ PricingEngine: loaded pricing config", "path", configPath, "rules", len(config.Rules))
	return engine, nil
}

func validateConfig(config *PricingConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if len(config.Bands) == 0 {
		return fmt.Errorf("bands are required")
	}
	for name, band := range config.Bands {
		if band.Min < 0 || band.Max < band.Min {
			return fmt.Errorf("band %q: invalid range [%d, %d]", name, band.Min, band.Max)
		}
	}
	if config.Fallback.Min < 0 || config.Fallback.Max < config.Fallback.Min {
		return fmt.Errorf("fallback band: invalid range [%d, %d]", config.Fallback.Min, config.Fallback.Max)
	}
	for _, rule := range config.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rule id is required")
		}
		if len(rule.AllOf) == 0 && len(rule.AnyOf) == 0 {
			return fmt.Errorf("rule %q: no terms", rule.ID)
		}
	}
	return nil
}

// Currency returns the configured currency code
func (e *Engine) Currency() string {
	return e.config.Currency
}

// BandFor returns the base band for category
func (e *Engine) BandFor(category models.Category) Band {
	if band, ok := e.config.Bands[string(category)]; ok {
		return band
	}
	return e.config.Fallback
}

// Premium sums the premiums of all rules matching text and returns their IDs
func (e *Engine) Premium(text string) (decimal.Decimal, []string) {
	text = strings.ToLower(text)
	premium := decimal.Zero
	applied := []string{}
	groups := make(map[string]bool)

	for _, rule := range e.config.Rules {
		if !rule.Active {
			continue
		}
		if rule.Group != "" && groups[rule.Group] {
			continue
		}
		if !rule.matches(text) {
			continue
		}
		if rule.Group != "" {
			groups[rule.Group] = true
		}
		premium = premium.Add(decimal.NewFromInt(rule.Premium))
		applied = append(applied, rule.ID)
	}

	return premium, applied
}

// Quote draws a base price from the category band and adds the feature
// premiums found in text. The total is rounded to the nearest hundred.
func (e *Engine) Quote(rng utils.Rand, category models.Category, text string) Quote {
	band := e.BandFor(category)
	amount := float64(band.Min) + rng.Float64()*float64(band.Max-band.Min)
	base := decimal.NewFromFloat(amount).Round(2)

	premium, applied := e.Premium(text)
	total := base.Add(premium).Round(-2)

	return Quote{
		Base:         base,
		Premium:      premium,
		Total:        total,
		AppliedRules: applied,
	}
}

func (r Rule) matches(text string) bool {
	for _, term := range r.AllOf {
		if !strings.Contains(text, term) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return true
	}
	for _, term := range r.AnyOf {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
