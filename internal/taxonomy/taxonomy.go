// Package taxonomy holds the static phrase lists the extractor matches against.
// A Store is built once at startup and only read afterwards, so it can be
// shared across goroutines without locking.
package taxonomy

import (
	"sort"
	"strings"
)

// Config describes the phrase lists used to build a Store
type Config struct {
	Products   []string          `yaml:"products"`
	Brands     []string          `yaml:"brands"`
	RootColors []string          `yaml:"root_colors"`
	Shades     map[string]string `yaml:"shades"`
}

// Store is an immutable taxonomy snapshot
type Store struct {
	products    []string
	productSet  map[string]struct{}
	brands      []string
	colors      []string
	shadeToRoot map[string]string
}

// Default returns the built-in shopping taxonomy
func Default() *Store {
	return New(Config{
		Products:   defaultProducts,
		Brands:     defaultBrands,
		RootColors: defaultRootColors,
		Shades:     defaultShades,
	})
}

// New builds a store from explicit lists. Phrases are lowercased and
// trimmed; duplicates keep their first position. Colors are the sorted
// union of root colors and shade names.
func New(cfg Config) *Store {
	s := &Store{
		products:    normalizeList(cfg.Products),
		brands:      normalizeList(cfg.Brands),
		shadeToRoot: make(map[string]string, len(cfg.Shades)),
	}

	s.productSet = make(map[string]struct{}, len(s.products))
	for _, p := range s.products {
		s.productSet[p] = struct{}{}
	}

	colorSet := make(map[string]struct{})
	for _, c := range normalizeList(cfg.RootColors) {
		colorSet[c] = struct{}{}
	}
	for shade, root := range cfg.Shades {
		shade = normalizePhrase(shade)
		root = normalizePhrase(root)
		if shade == "" || root == "" {
			continue
		}
		s.shadeToRoot[shade] = root
		colorSet[shade] = struct{}{}
	}
	s.colors = make([]string, 0, len(colorSet))
	for c := range colorSet {
		s.colors = append(s.colors, c)
	}
	sort.Strings(s.colors)

	return s
}

// Products returns the product phrases in taxonomy order
func (s *Store) Products() []string { return clone(s.products) }

// Brands returns the brand phrases in taxonomy order
func (s *Store) Brands() []string { return clone(s.brands) }

// Colors returns root colors and shades, sorted
func (s *Store) Colors() []string { return clone(s.colors) }

// HasProduct reports whether name is a known product phrase
func (s *Store) HasProduct(name string) bool {
	_, ok := s.productSet[name]
	return ok
}

// RootColor maps a shade to its root color
func (s *Store) RootColor(shade string) (string, bool) {
	root, ok := s.shadeToRoot[shade]
	return root, ok
}

func normalizePhrase(p string) string {
	return strings.Join(strings.Fields(strings.ToLower(p)), " ")
}

func normalizeList(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = normalizePhrase(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
