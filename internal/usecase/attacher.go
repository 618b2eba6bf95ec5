package usecase

import (
	"strings"

	"github.com/whispercart/backend/internal/domain"
)

// Proximity thresholds in token positions
const (
	DefaultBrandProximity    = 3
	DefaultColorProximity    = 3
	DefaultQuantityProximity = 3
	DefaultBudgetProximity   = 5
)

// ProximityConfig holds the maximum attachment distance per class
type ProximityConfig struct {
	Brand    int
	Color    int
	Quantity int
	Budget   int
}

// DefaultProximity returns the standard thresholds
func DefaultProximity() ProximityConfig {
	return ProximityConfig{
		Brand:    DefaultBrandProximity,
		Color:    DefaultColorProximity,
		Quantity: DefaultQuantityProximity,
		Budget:   DefaultBudgetProximity,
	}
}

func (p ProximityConfig) withDefaults() ProximityConfig {
	d := DefaultProximity()
	if p.Brand <= 0 {
		p.Brand = d.Brand
	}
	if p.Color <= 0 {
		p.Color = d.Color
	}
	if p.Quantity <= 0 {
		p.Quantity = d.Quantity
	}
	if p.Budget <= 0 {
		p.Budget = d.Budget
	}
	return p
}

// Attacher assigns attribute matches to the nearest product mentions
type Attacher struct {
	proximity  ProximityConfig
	normalizer *Normalizer
}

// NewAttacher creates an attacher; zero thresholds take their defaults
func NewAttacher(proximity ProximityConfig, normalizer *Normalizer) *Attacher {
	return &Attacher{proximity: proximity.withDefaults(), normalizer: normalizer}
}

// spanDistance is the token distance from pos to the closed span of m
func spanDistance(pos int, m domain.Match) int {
	switch {
	case pos < m.StartPos:
		return m.StartPos - pos
	case pos > m.EndPos:
		return pos - m.EndPos
	default:
		return 0
	}
}

// ClosestWithin returns the indices of every product at the minimum
// distance from pos, or nil when that distance exceeds threshold.
func ClosestWithin(pos int, products []domain.Match, threshold int) []int {
	if len(products) == 0 {
		return nil
	}

	minDist := -1
	dists := make([]int, len(products))
	for i, p := range products {
		dists[i] = spanDistance(pos, p)
		if minDist < 0 || dists[i] < minDist {
			minDist = dists[i]
		}
	}
	if minDist > threshold {
		return nil
	}

	var idxs []int
	for i, d := range dists {
		if d == minDist {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Attachments groups the attribute matches left after resolution
type Attachments struct {
	Brands     []domain.Match
	Colors     []domain.Match
	Quantities []domain.Match
	Budgets    []domain.Match
}

// Attach adds attribute values to records, where records[i] was built from
// products[i]. Colors go first, then brands, quantities and budgets.
func (a *Attacher) Attach(records []*domain.ProductRecord, products []domain.Match, attrs Attachments) {
	for _, c := range attrs.Colors {
		color := a.normalizer.Color(c.MatchedWith)
		for _, idx := range ClosestWithin(c.StartPos, products, a.proximity.Color) {
			r := records[idx]
			r.Colors.Add(color)
			r.ColorsRaw.Add(c.Term)
			r.AddLog(c)
		}
	}

	for _, b := range attrs.Brands {
		brand := a.normalizer.Brand(b.MatchedWith)
		for _, idx := range ClosestWithin(b.StartPos, products, a.proximity.Brand) {
			r := records[idx]
			if brandNamesProduct(brand, r.CanonicalName) {
				continue
			}
			r.Brands.Add(brand)
			r.BrandsRaw.Add(b.Term)
			r.AddLog(b)
		}
	}

	for _, q := range attrs.Quantities {
		val, ok := ParseQuantity(q.MatchedWith)
		if !ok {
			continue
		}
		for _, idx := range ClosestWithin(q.StartPos, products, a.proximity.Quantity) {
			records[idx].Quantities.Add(val)
			records[idx].AddLog(q)
		}
	}

	for _, bd := range attrs.Budgets {
		val, ok := ParseBudget(bd.MatchedWith)
		if !ok {
			continue
		}
		for _, idx := range ClosestWithin(bd.StartPos, products, a.proximity.Budget) {
			records[idx].Budgets.Add(val)
			records[idx].AddLog(bd)
		}
	}
}

// brandNamesProduct reports whether the brand is the product name itself or
// a whole-word part of it, as "sony" is of "sony xperia phone".
func brandNamesProduct(brand, product string) bool {
	if brand == product {
		return true
	}
	return strings.Contains(" "+product+" ", " "+brand+" ")
}
