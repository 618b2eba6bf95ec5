package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispercart/backend/internal/domain"
)

func record(name, term string, pos int) *domain.ProductRecord {
	return domain.NewProductRecord(name, match(term, name, pos, pos, 100, domain.ClassProduct))
}

func TestNewMerger_Defaults(t *testing.T) {
	m := NewMerger(MergeConfig{})
	assert.Equal(t, DefaultMergeWindow, m.window)
	assert.Equal(t, DefaultMergeThreshold, m.threshold)
}

func TestMerger_ShouldMerge(t *testing.T) {
	m := NewMerger(MergeConfig{})

	testCases := []struct {
		name    string
		a, b    string
		minDist int
		want    bool
	}{
		{"identical names", "laptop", "laptop", 3, true},
		{"similar names", "laptop", "laptops", 2, true},
		{"plural only", "tvs", "tv", 1, true},
		{"case insensitive", "Laptop", "laptop", 0, true},
		{"different names", "mouse", "laptop", 0, false},
		{"outside window", "laptop", "laptop", 7, false},
		{"at window edge", "laptop", "laptop", 6, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.ShouldMerge(tc.a, tc.b, tc.minDist))
		})
	}
}

func TestMerger_Merge(t *testing.T) {
	m := NewMerger(MergeConfig{})

	t.Run("merges duplicate mentions", func(t *testing.T) {
		a := record("sofa", "sofa", 0)
		a.Colors.Add("red")
		b := record("sofa", "sofas", 1)
		b.Budgets.Add(30000)

		merged := m.Merge([]*domain.ProductRecord{a, b})

		require.Len(t, merged, 1)
		got := merged[0]
		assert.Equal(t, "sofa", got.CanonicalName)
		assert.Equal(t, []string{"sofa", "sofas"}, got.AliasesRaw.Sorted())
		assert.Equal(t, []int{0, 1}, got.Positions.Sorted())
		assert.Equal(t, []string{"red"}, got.Colors.Sorted())
		assert.Equal(t, []int{30000}, got.Budgets.Sorted())
		assert.Len(t, got.MatchLogs, 2)
	})

	t.Run("keeps distinct products apart", func(t *testing.T) {
		merged := m.Merge([]*domain.ProductRecord{
			record("mouse", "mouse", 0),
			record("laptop", "laptop", 2),
		})

		require.Len(t, merged, 2)
		assert.Equal(t, "mouse", merged[0].CanonicalName)
		assert.Equal(t, "laptop", merged[1].CanonicalName)
	})

	t.Run("single link from seed only", func(t *testing.T) {
		// a~b and b~c by distance, but a and c are too far apart
		merged := m.Merge([]*domain.ProductRecord{
			record("tv", "tv", 0),
			record("tv", "tv", 6),
			record("tv", "tv", 12),
		})

		require.Len(t, merged, 2)
		assert.Equal(t, []int{0, 6}, merged[0].Positions.Sorted())
		assert.Equal(t, []int{12}, merged[1].Positions.Sorted())
	})

	t.Run("canonical name is the longest alias", func(t *testing.T) {
		merged := m.Merge([]*domain.ProductRecord{
			record("smart tv", "smart tv", 0),
			record("smart tvs", "smart tvs", 3),
		})

		require.Len(t, merged, 1)
		assert.Equal(t, "smart tvs", merged[0].CanonicalName)
		assert.Equal(t, []string{"smart tv", "smart tvs"}, merged[0].Aliases.Sorted())
	})

	t.Run("never produces more records than it gets", func(t *testing.T) {
		records := []*domain.ProductRecord{
			record("laptop", "laptop", 0),
			record("laptop bag", "laptop bag", 1),
			record("laptops", "laptops", 4),
			record("mouse", "mouse", 9),
		}
		assert.LessOrEqual(t, len(m.Merge(records)), len(records))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, m.Merge(nil))
	})
}

func derefRecords(rs []*domain.ProductRecord) []domain.ProductRecord {
	out := make([]domain.ProductRecord, len(rs))
	for i, r := range rs {
		out[i] = *r
	}
	return out
}

func TestMerger_MergeIsStableOnSecondPass(t *testing.T) {
	m := NewMerger(MergeConfig{})

	testCases := []struct {
		name  string
		input func() []*domain.ProductRecord
	}{
		{"duplicate mentions", func() []*domain.ProductRecord {
			return []*domain.ProductRecord{record("sofa", "sofa", 0), record("sofa", "sofas", 1)}
		}},
		{"distinct products", func() []*domain.ProductRecord {
			return []*domain.ProductRecord{record("mouse", "mouse", 0), record("laptop", "laptop", 2)}
		}},
		{"mixed", func() []*domain.ProductRecord {
			return []*domain.ProductRecord{
				record("sofa", "sofa", 0),
				record("sofa", "sofas", 1),
				record("mouse", "mouse", 3),
				record("laptop", "laptop", 5),
			}
		}},
		{"repeats outside the window", func() []*domain.ProductRecord {
			return []*domain.ProductRecord{record("tv", "tv", 0), record("tv", "tv", 7)}
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			once := m.Merge(tc.input())
			twice := m.Merge(m.Merge(tc.input()))
			assert.Equal(t, derefRecords(once), derefRecords(twice))
		})
	}
}

func TestMerger_ChainedMentionsCollapseOnSecondPass(t *testing.T) {
	m := NewMerger(MergeConfig{})
	input := []*domain.ProductRecord{record("tv", "tv", 0), record("tv", "tv", 6), record("tv", "tv", 12)}

	// The seed at 0 absorbs 6 but not 12; the merged {0, 6} record is
	// within the window of 12 on the next pass.
	once := m.Merge(input)
	require.Len(t, once, 2)
	assert.Equal(t, []int{0, 6}, once[0].Positions.Sorted())
	assert.Equal(t, []int{12}, once[1].Positions.Sorted())

	twice := m.Merge(once)
	require.Len(t, twice, 1)
	assert.Equal(t, []int{0, 6, 12}, twice[0].Positions.Sorted())
}

func TestLongestName(t *testing.T) {
	testCases := []struct {
		name  string
		names []string
		want  string
	}{
		{"more words wins", []string{"television", "smart tv"}, "smart tv"},
		{"more characters wins", []string{"tv", "television"}, "television"},
		{"lexicographic tie break", []string{"abd", "abc"}, "abc"},
		{"counts runes", []string{"café", "cafes"}, "cafes"},
		{"empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LongestName(tc.names))
		})
	}
}
