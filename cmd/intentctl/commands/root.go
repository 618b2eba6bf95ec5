package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/whispercart/backend/internal/logging"
)

var (
	logLevel string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "intentctl",
	Short: "WhisperCart intent extraction from the command line",
	Long: `intentctl runs the shopping intent pipeline locally. It extracts products
with their brands, colors, quantities and budgets from an utterance, and
reads the query history recorded by the intent service.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable pipeline debug logging")
}

// newLogger writes console logs to the command's stderr
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := logLevel
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:       level,
		Format:      "console",
		Output:      cmd.ErrOrStderr(),
		ServiceName: "intentctl",
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
