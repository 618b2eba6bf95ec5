package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/whispercart/backend/internal/taxonomy"
	"github.com/whispercart/backend/internal/usecase"
)

var (
	taxonomyPath   string
	fuzzyThreshold float64
	pretty         bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract shopping intents from text",
	Long: `Extract runs the pipeline over the given words, or over standard input
when no arguments are passed, and prints the result as JSON.`,
	Example: `  intentctl extract "wireless headphones under 5000"
  echo "2 grey t-shirts" | intentctl extract --pretty`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&taxonomyPath, "taxonomy", "t", "", "taxonomy YAML file (built-in vocabulary when empty)")
	extractCmd.Flags().Float64Var(&fuzzyThreshold, "threshold", usecase.DefaultFuzzyThreshold, "fuzzy match threshold (0-100]")
	extractCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent JSON output")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to extract")
	}

	store, err := taxonomy.Load(taxonomyPath)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	extractor := usecase.NewExtractor(store, nil, usecase.ExtractorConfig{
		FuzzyThreshold:     fuzzyThreshold,
		EnableDebugLogging: verbose,
	}, logger)

	return writeJSON(cmd.OutOrStdout(), extractor.Extract(text))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
