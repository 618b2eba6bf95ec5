package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/whispercart/backend/internal/domain"
)

// LoadFile reads a YAML taxonomy. Sections left empty fall back to the
// built-in lists, so a file may override only the brands, for example.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrTaxonomyInvalid, path, err)
	}
	return Parse(data)
}

// Parse builds a store from YAML bytes
func Parse(data []byte) (*Store, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTaxonomyInvalid, err)
	}

	if len(cfg.Products) == 0 {
		cfg.Products = defaultProducts
	}
	if len(cfg.Brands) == 0 {
		cfg.Brands = defaultBrands
	}
	if len(cfg.RootColors) == 0 {
		cfg.RootColors = defaultRootColors
	}
	if len(cfg.Shades) == 0 {
		cfg.Shades = defaultShades
	}

	return New(cfg), nil
}

// Load returns the store at path, or the built-in taxonomy when path is empty
func Load(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
