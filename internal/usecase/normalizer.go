package usecase

import (
	"strings"

	"github.com/whispercart/backend/internal/taxonomy"
)

// Normalizer canonicalizes product, brand and color surface forms
type Normalizer struct {
	taxonomy *taxonomy.Store
}

// NewNormalizer creates a normalizer backed by the taxonomy
func NewNormalizer(store *taxonomy.Store) *Normalizer {
	return &Normalizer{taxonomy: store}
}

// Product lowercases the name and collapses a plural when the singular is
// itself a known product ("headphones" stays, "laptops" becomes "laptop").
func (n *Normalizer) Product(name string) string {
	name = strings.ToLower(name)
	if singular, ok := strings.CutSuffix(name, "s"); ok && n.taxonomy.HasProduct(singular) {
		return singular
	}
	return name
}

// Brand lowercases the name
func (n *Normalizer) Brand(name string) string {
	return strings.ToLower(name)
}

// Color folds spelling variants and maps shades to their root color
func (n *Normalizer) Color(name string) string {
	color := strings.TrimSpace(strings.ToLower(name))
	color = strings.ReplaceAll(color, "colour", "color")
	if trimmed, ok := strings.CutSuffix(color, " color"); ok {
		color = strings.TrimSpace(trimmed)
	}
	if root, ok := n.taxonomy.RootColor(color); ok {
		return root
	}
	return color
}
