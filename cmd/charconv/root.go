package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charconv",
	Short: "Validate and convert between LATIN-1, UTF-8, UTF-16, and UTF-32",
	Long: `charconv provides three features:
- Validates a byte buffer against a named encoding.
- Reports the exact output size a conversion between two encodings would need.
- Converts a byte buffer from one encoding to another.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var logger *slog.Logger

func init() {
	runID := uuid.New().String()
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", runID)
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
