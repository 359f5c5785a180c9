package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/axiomhq/charconv"
)

var validateFlags = struct {
	encoding *string
	source   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Check whether a byte buffer is well-formed in an encoding",
		Example: `  cat input.bin | charconv validate --encoding utf8`,
		RunE:    runValidate,
	}
	validateFlags.encoding = cmd.Flags().StringP("encoding", "e", "", "encoding to validate against: latin1|utf8|utf16le|utf16be|utf32 (required)")
	validateFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	cmd.MarkFlagRequired("encoding")
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	enc, err := parseEncoding(*validateFlags.encoding)
	if err != nil {
		return err
	}

	src, err := readInput(*validateFlags.source)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result := charconv.Validate(enc, src)
	logger.Info("validate", "encoding", enc.String(), "bytes", len(src), "ok", result.Ok())
	if !result.Ok() {
		return fmt.Errorf("invalid at offset %d: %s", result.InputConsumed, result.Kind)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
