package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axiomhq/charconv"
)

var lengthFlags = struct {
	src    *string
	dst    *string
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "length",
		Short:   "Report the output size a conversion between two encodings would need",
		Example: `  cat input.bin | charconv length --src utf8 --dst utf16le`,
		RunE:    runLength,
	}
	lengthFlags.src = cmd.Flags().String("src", "", "source encoding (required)")
	lengthFlags.dst = cmd.Flags().String("dst", "", "destination encoding (required)")
	lengthFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	cmd.MarkFlagRequired("src")
	cmd.MarkFlagRequired("dst")
	rootCmd.AddCommand(cmd)
}

func runLength(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(*lengthFlags.src)
	if err != nil {
		return err
	}
	dstEnc, err := parseEncoding(*lengthFlags.dst)
	if err != nil {
		return err
	}

	src, err := readInput(*lengthFlags.source)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	n := charconv.LengthFor(srcEnc, dstEnc, src)
	logger.Info("length", "src", srcEnc.String(), "dst", dstEnc.String(), "bytes", n)
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
