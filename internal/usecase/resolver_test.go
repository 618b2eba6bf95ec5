package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispercart/backend/internal/domain"
)

func match(term, matchedWith string, start, end int, score float64, class domain.MatchClass) domain.Match {
	return domain.Match{
		Term:        term,
		MatchedWith: matchedWith,
		StartPos:    start,
		EndPos:      end,
		Score:       score,
		Class:       class,
	}
}

func TestRemoveOverlaps(t *testing.T) {
	t.Run("longer phrase wins at same start", func(t *testing.T) {
		matches := []domain.Match{
			match("sony", "sony tv", 0, 0, 72, domain.ClassProduct),
			match("sony xperia phone", "sony xperia phone", 0, 2, 100, domain.ClassProduct),
			match("phone", "phone", 2, 2, 100, domain.ClassProduct),
		}

		got := RemoveOverlaps(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "sony xperia phone", got[0].MatchedWith)
	})

	t.Run("higher score breaks length ties", func(t *testing.T) {
		matches := []domain.Match{
			match("sofa", "soda", 0, 0, 75, domain.ClassProduct),
			match("sofa", "sofa", 0, 0, 100, domain.ClassProduct),
		}

		got := RemoveOverlaps(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "sofa", got[0].MatchedWith)
	})

	t.Run("phrase length counts characters", func(t *testing.T) {
		matches := []domain.Match{
			match("t-shirts", "shorts", 2, 2, 71.4, domain.ClassProduct),
			match("t-shirts", "t-shirt", 2, 2, 93.3, domain.ClassProduct),
		}

		got := RemoveOverlaps(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "t-shirt", got[0].MatchedWith)
	})

	t.Run("keeps disjoint matches in start order", func(t *testing.T) {
		matches := []domain.Match{
			match("laptop", "laptop", 4, 4, 100, domain.ClassProduct),
			match("mouse", "mouse", 0, 0, 100, domain.ClassProduct),
		}

		got := RemoveOverlaps(matches)

		require.Len(t, got, 2)
		assert.Equal(t, 0, got[0].StartPos)
		assert.Equal(t, 4, got[1].StartPos)
	})

	t.Run("does not modify input", func(t *testing.T) {
		matches := []domain.Match{
			match("b", "b", 3, 3, 100, domain.ClassProduct),
			match("a", "a", 1, 1, 100, domain.ClassProduct),
		}
		RemoveOverlaps(matches)
		assert.Equal(t, 3, matches[0].StartPos)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RemoveOverlaps(nil))
	})
}

func TestRemoveOverlaps_NoOverlapInOutput(t *testing.T) {
	tokens := NewWordTokenizer().Tokenize("sony xperia phone with wireless headphones and a gaming laptop bag")
	matches := NewPhraseMatcher(DefaultFuzzyThreshold).FindMatches(tokens, defaultStore().Products(), domain.ClassProduct)
	require.NotEmpty(t, matches)

	got := RemoveOverlaps(matches)

	for i := range got {
		for j := i + 1; j < len(got); j++ {
			assert.False(t, got[i].Overlaps(got[j]), "%+v overlaps %+v", got[i], got[j])
		}
	}
}

func TestDedupeByWindow(t *testing.T) {
	t.Run("exact match beats longer fuzzy match", func(t *testing.T) {
		matches := []domain.Match{
			match("grey", "gray", 1, 1, 75, domain.ClassColor),
			match("grey", "grey", 1, 1, 100, domain.ClassColor),
		}

		got := DedupeByWindow(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "grey", got[0].MatchedWith)
	})

	t.Run("longer phrase beats shorter among fuzzy", func(t *testing.T) {
		matches := []domain.Match{
			match("in blue", "navy blue", 3, 4, 75, domain.ClassColor),
			match("in blue", "light blue", 3, 4, 70.6, domain.ClassColor),
		}

		got := DedupeByWindow(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "light blue", got[0].MatchedWith)
	})

	t.Run("first seen wins full ties", func(t *testing.T) {
		matches := []domain.Match{
			match("abc", "abd", 0, 0, 66, domain.ClassBrand),
			match("abc", "abe", 0, 0, 66, domain.ClassBrand),
		}

		got := DedupeByWindow(matches)

		require.Len(t, got, 1)
		assert.Equal(t, "abd", got[0].MatchedWith)
	})

	t.Run("keeps distinct windows in first seen order", func(t *testing.T) {
		matches := []domain.Match{
			match("red", "red", 5, 5, 100, domain.ClassColor),
			match("blue", "blue", 1, 1, 100, domain.ClassColor),
			match("red", "red", 5, 5, 100, domain.ClassColor),
		}

		got := DedupeByWindow(matches)

		require.Len(t, got, 2)
		assert.Equal(t, 5, got[0].StartPos)
		assert.Equal(t, 1, got[1].StartPos)
	})

	t.Run("class is part of the window", func(t *testing.T) {
		matches := []domain.Match{
			match("sony", "sony", 0, 0, 100, domain.ClassBrand),
			match("sony", "sony", 0, 0, 100, domain.ClassProduct),
		}
		assert.Len(t, DedupeByWindow(matches), 2)
	})
}

func TestSuppressBrandOverlaps(t *testing.T) {
	products := []domain.Match{
		match("sony tv", "sony tv", 0, 1, 100, domain.ClassProduct),
	}
	brands := []domain.Match{
		match("sony tv", "Sony TV", 0, 1, 100, domain.ClassBrand),
		match("sony", "sony", 0, 0, 100, domain.ClassBrand),
		match("sony tv", "sony xperia", 0, 1, 72, domain.ClassBrand),
	}

	got := SuppressBrandOverlaps(brands, products)

	require.Len(t, got, 2)
	assert.Equal(t, "sony", got[0].MatchedWith)
	assert.Equal(t, "sony xperia", got[1].MatchedWith)
}

func TestSortByStart(t *testing.T) {
	matches := []domain.Match{
		match("c", "c", 4, 4, 100, domain.ClassProduct),
		match("a", "a", 1, 1, 100, domain.ClassProduct),
		match("b", "b", 1, 2, 100, domain.ClassProduct),
	}

	SortByStart(matches)

	assert.Equal(t, "a", matches[0].Term)
	assert.Equal(t, "b", matches[1].Term)
	assert.Equal(t, "c", matches[2].Term)
}
