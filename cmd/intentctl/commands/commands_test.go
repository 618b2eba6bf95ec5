package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whispercart/backend/internal/domain"
	"github.com/whispercart/backend/internal/infrastructure/history"
	"github.com/whispercart/backend/internal/usecase"
)

// run executes the root command with fresh flag values
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	logLevel, verbose = "warn", false
	taxonomyPath, fuzzyThreshold, pretty = "", usecase.DefaultFuzzyThreshold, false
	historyDB, historyLimit = "queries.db", 10

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCommand_Args(t *testing.T) {
	out, err := run(t, "", "extract", "I", "want", "wireless", "headphones", "under", "5000", "rupees")
	require.NoError(t, err)

	var result domain.ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.TotalProducts)
	assert.Equal(t, "wireless headphones", result.Products[0].CanonicalName)
	assert.Equal(t, []int{5000}, result.Products[0].Budgets.Sorted())
}

func TestExtractCommand_Stdin(t *testing.T) {
	out, err := run(t, "2 grey t-shirts\n", "extract", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"products\"")

	var result domain.ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.TotalProducts)
	assert.Equal(t, "t-shirt", result.Products[0].CanonicalName)
	assert.Equal(t, []int{2}, result.Products[0].Quantities.Sorted())
}

func TestExtractCommand_EmptyInput(t *testing.T) {
	_, err := run(t, "   ", "extract")
	assert.Error(t, err)
}

func TestExtractCommand_MissingTaxonomy(t *testing.T) {
	_, err := run(t, "", "extract", "--taxonomy", filepath.Join(t.TempDir(), "missing.yaml"), "headphones")
	assert.Error(t, err)
}

func TestHistoryCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := history.OpenSQLite(context.Background(), dbPath)
	require.NoError(t, err)
	for _, text := range []string{"first query", "second query"} {
		_, err := store.Save(context.Background(), text, domain.EmptyResult())
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	out, err := run(t, "", "history", "--db", dbPath, "--limit", "1")
	require.NoError(t, err)

	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "second query", entries[0].RawText)
}

func TestHistoryCommand_InvalidLimit(t *testing.T) {
	_, err := run(t, "", "history", "--db", filepath.Join(t.TempDir(), "h.db"), "--limit", "0")
	assert.Error(t, err)
}
