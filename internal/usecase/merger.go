package usecase

import (
	"strings"

	"github.com/whispercart/backend/internal/domain"
)

// Merge defaults
const (
	DefaultMergeWindow    = 6
	DefaultMergeThreshold = 85.0
)

// MergeConfig controls when two product records are the same mention
type MergeConfig struct {
	Window    int
	Threshold float64
}

// Merger groups near-duplicate product records
type Merger struct {
	window    int
	threshold float64
}

// NewMerger creates a merger; zero values take their defaults
func NewMerger(cfg MergeConfig) *Merger {
	if cfg.Window <= 0 {
		cfg.Window = DefaultMergeWindow
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultMergeThreshold
	}
	return &Merger{window: cfg.Window, threshold: cfg.Threshold}
}

// ShouldMerge reports whether two product names at the given minimum
// position distance refer to the same product
func (m *Merger) ShouldMerge(nameA, nameB string, minPosDist int) bool {
	if minPosDist > m.window {
		return false
	}
	a, b := strings.ToLower(nameA), strings.ToLower(nameB)
	if Ratio(a, b) >= m.threshold {
		return true
	}
	return strings.TrimSuffix(a, "s") == strings.TrimSuffix(b, "s")
}

// Merge groups records with a single forward pass. Each unvisited record
// seeds a group and absorbs every later unvisited record that merges with
// the seed. Absorbed records do not pull in further records themselves.
func (m *Merger) Merge(records []*domain.ProductRecord) []*domain.ProductRecord {
	used := make([]bool, len(records))
	var merged []*domain.ProductRecord

	for i, seed := range records {
		if used[i] {
			continue
		}
		used[i] = true
		group := []*domain.ProductRecord{seed}

		for j := i + 1; j < len(records); j++ {
			if used[j] {
				continue
			}
			if m.ShouldMerge(seed.CanonicalName, records[j].CanonicalName, minPositionDistance(seed, records[j])) {
				group = append(group, records[j])
				used[j] = true
			}
		}

		merged = append(merged, combine(group))
	}

	return merged
}

func minPositionDistance(a, b *domain.ProductRecord) int {
	best := -1
	for _, pa := range a.Positions.Values() {
		for _, pb := range b.Positions.Values() {
			d := pa - pb
			if d < 0 {
				d = -d
			}
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

func combine(group []*domain.ProductRecord) *domain.ProductRecord {
	out := &domain.ProductRecord{}
	for _, r := range group {
		out.Aliases.Union(r.Aliases)
		out.AliasesRaw.Union(r.AliasesRaw)
		out.Quantities.Union(r.Quantities)
		out.Brands.Union(r.Brands)
		out.BrandsRaw.Union(r.BrandsRaw)
		out.Colors.Union(r.Colors)
		out.ColorsRaw.Union(r.ColorsRaw)
		out.Budgets.Union(r.Budgets)
		out.Positions.Union(r.Positions)
		for _, ml := range r.MatchLogs {
			out.AddLog(ml)
		}
	}
	out.CanonicalName = LongestName(out.Aliases.Values())
	return out
}

// LongestName picks the name with the most words, then the most
// characters; remaining ties go to the lexicographically smallest.
func LongestName(names []string) string {
	best := ""
	bestWords, bestLen := -1, -1
	for _, n := range names {
		words, length := len(strings.Fields(n)), phraseLength(n)
		switch {
		case words > bestWords,
			words == bestWords && length > bestLen,
			words == bestWords && length == bestLen && n < best:
			best, bestWords, bestLen = n, words, length
		}
	}
	return best
}
