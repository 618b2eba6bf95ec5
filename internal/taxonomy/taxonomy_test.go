package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispercart/backend/internal/domain"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.True(t, s.HasProduct("t-shirt"))
	assert.True(t, s.HasProduct("wireless headphones"))
	assert.False(t, s.HasProduct("t-shirts"))

	root, ok := s.RootColor("navy blue")
	assert.True(t, ok)
	assert.Equal(t, "blue", root)

	root, ok = s.RootColor("grey")
	assert.True(t, ok)
	assert.Equal(t, "gray", root)

	_, ok = s.RootColor("blue")
	assert.False(t, ok)

	colors := s.Colors()
	assert.Contains(t, colors, "blue")
	assert.Contains(t, colors, "navy blue")
	assert.IsIncreasing(t, colors)
}

func TestNew_NormalizesAndDedupes(t *testing.T) {
	s := New(Config{
		Products:   []string{"  Laptop ", "laptop", "Gaming   Mouse", ""},
		Brands:     []string{"Sony", "sony"},
		RootColors: []string{"Blue"},
		Shades:     map[string]string{"Navy Blue": "BLUE", "": "red"},
	})

	assert.Equal(t, []string{"laptop", "gaming mouse"}, s.Products())
	assert.Equal(t, []string{"sony"}, s.Brands())
	assert.Equal(t, []string{"blue", "navy blue"}, s.Colors())

	root, ok := s.RootColor("navy blue")
	require.True(t, ok)
	assert.Equal(t, "blue", root)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Default()

	products := s.Products()
	products[0] = "mutated"

	assert.NotEqual(t, "mutated", s.Products()[0])
}

func TestParse(t *testing.T) {
	t.Run("overrides given sections only", func(t *testing.T) {
		s, err := Parse([]byte("brands:\n  - Acme\n  - Globex\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"acme", "globex"}, s.Brands())
		assert.True(t, s.HasProduct("laptop"))
		assert.Contains(t, s.Colors(), "gray")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("products: [unterminated"))
		assert.True(t, errors.Is(err, domain.ErrTaxonomyInvalid))
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		assert.True(t, s.HasProduct("sony xperia phone"))
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taxonomy.yaml")
		content := "products:\n  - kettle\nshades:\n  teal: blue\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"kettle"}, s.Products())
		root, ok := s.RootColor("teal")
		assert.True(t, ok)
		assert.Equal(t, "blue", root)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, domain.ErrTaxonomyInvalid)
	})
}
