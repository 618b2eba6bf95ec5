package usecase

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/whispercart/backend/internal/domain"
)

// RemoveOverlaps keeps a set of pairwise non-overlapping matches. Matches
// are ordered by start position, then longer matched phrase, then higher
// score, and accepted greedily, so a full "sony xperia phone" wins over
// the shorter phrases inside it.
func RemoveOverlaps(matches []domain.Match) []domain.Match {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]domain.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.StartPos != b.StartPos {
			return a.StartPos < b.StartPos
		}
		if la, lb := phraseLength(a.MatchedWith), phraseLength(b.MatchedWith); la != lb {
			return la > lb
		}
		return a.Score > b.Score
	})

	var accepted []domain.Match
	for _, m := range sorted {
		overlaps := false
		for _, kept := range accepted {
			if m.Overlaps(kept) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			accepted = append(accepted, m)
		}
	}
	return accepted
}

type windowKey struct {
	start, end int
	class      domain.MatchClass
}

// DedupeByWindow keeps the best match for each (start, end, class) window.
// Best means exact surface match first, then longer matched phrase, then
// higher score. Earlier matches win full ties; output follows the order in
// which windows first appear.
func DedupeByWindow(matches []domain.Match) []domain.Match {
	best := make(map[windowKey]int)
	var out []domain.Match

	for _, m := range matches {
		key := windowKey{start: m.StartPos, end: m.EndPos, class: m.Class}
		idx, ok := best[key]
		if !ok {
			best[key] = len(out)
			out = append(out, m)
			continue
		}
		if betterWindowChoice(m, out[idx]) {
			out[idx] = m
		}
	}
	return out
}

func betterWindowChoice(m, prev domain.Match) bool {
	me, pe := isExactMatch(m), isExactMatch(prev)
	if me != pe {
		return me
	}
	if lm, lp := phraseLength(m.MatchedWith), phraseLength(prev.MatchedWith); lm != lp {
		return lm > lp
	}
	return m.Score > prev.Score
}

// phraseLength counts characters, not bytes
func phraseLength(s string) int {
	return utf8.RuneCountInString(s)
}

func isExactMatch(m domain.Match) bool {
	return strings.EqualFold(m.Term, m.MatchedWith)
}

// SuppressBrandOverlaps drops brand matches that cover exactly the span of
// a product match with the same phrase, so a phrase listed both as a brand
// and as a product is recorded once, as the product.
func SuppressBrandOverlaps(brands, products []domain.Match) []domain.Match {
	var kept []domain.Match
	for _, b := range brands {
		drop := false
		for _, p := range products {
			if b.SameSpan(p) && strings.EqualFold(b.MatchedWith, p.MatchedWith) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, b)
		}
	}
	return kept
}

// SortByStart orders matches by start position, keeping ties stable
func SortByStart(matches []domain.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].StartPos < matches[j].StartPos
	})
}
