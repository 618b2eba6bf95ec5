package usecase

import (
	"strings"

	"github.com/whispercart/backend/internal/domain"
)

// DefaultFuzzyThreshold is the minimum ratio for a window to count as a match
const DefaultFuzzyThreshold = 70.0

// PhraseMatcher finds fuzzy occurrences of taxonomy phrases in a token stream
type PhraseMatcher struct {
	threshold float64
}

// NewPhraseMatcher creates a matcher. A non-positive threshold uses the default.
func NewPhraseMatcher(threshold float64) *PhraseMatcher {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &PhraseMatcher{threshold: threshold}
}

// Threshold returns the acceptance score
func (m *PhraseMatcher) Threshold() float64 {
	return m.threshold
}

// FindMatches slides a window as wide as each phrase over the tokens and
// returns every window whose lowercase text scores at least the threshold
// against the phrase. Matches come out phrase by phrase, left to right.
func (m *PhraseMatcher) FindMatches(tokens []domain.Token, phrases []string, class domain.MatchClass) []domain.Match {
	var matches []domain.Match
	n := len(tokens)

	lowered := make([]string, n)
	for i, tok := range tokens {
		lowered[i] = strings.ToLower(tok.Text)
	}

	for _, phrase := range phrases {
		phraseLower := strings.ToLower(phrase)
		length := len(strings.Fields(phraseLower))
		if length == 0 {
			continue
		}

		for i := 0; i+length <= n; i++ {
			window := strings.Join(lowered[i:i+length], " ")
			score := Ratio(window, phraseLower)
			if score < m.threshold {
				continue
			}

			raw := make([]string, length)
			for j := 0; j < length; j++ {
				raw[j] = tokens[i+j].Text
			}

			matches = append(matches, domain.Match{
				Term:        strings.Join(raw, " "),
				MatchedWith: phrase,
				StartPos:    i,
				EndPos:      i + length - 1,
				Score:       score,
				Class:       class,
			})
		}
	}

	return matches
}
