package models

// RawAsset is an image file discovered under the product images root
type RawAsset struct {
	Filename         string `json:"filename"`
	ContainingFolder string `json:"containingFolder"` // folder the file physically sits in
	Path             string `json:"path"`             // local path or remote download URL
}

// Classification groups discovered assets by their true category
type Classification struct {
	Assets       map[Category][]RawAsset `json:"assets"`
	Discarded    []string                `json:"discarded"`    // files without a known category prefix
	Unreadable   []string                `json:"unreadable"`   // files that failed the readability probe
	Reclassified int                     `json:"reclassified"` // files found outside their category folder
}

// NewClassification returns an empty classification
func NewClassification() *Classification {
	return &Classification{Assets: make(map[Category][]RawAsset)}
}

// Total returns the number of classified assets
func (c *Classification) Total() int {
	n := 0
	for _, assets := range c.Assets {
		n += len(assets)
	}
	return n
}

// ParsedAttributes holds the structured data recovered from an asset filename
type ParsedAttributes struct {
	Category Category `json:"category"`
	Metal    string   `json:"metal"`    // normalized, e.g. "white gold"
	Design   string   `json:"design"`   // first design token
	Features string   `json:"features"` // space-joined design and feature tokens
	SKU      string   `json:"sku"`
}

// SearchText returns metal and features folded into one lower-case string
func (p ParsedAttributes) SearchText() string {
	if p.Features == "" {
		return p.Metal
	}
	return p.Metal + " " + p.Features
}
