package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axiomhq/charconv"
)

var convertFlags = struct {
	src    *string
	dst    *string
	mode   *string
	source *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a byte buffer from one encoding to another",
		Example: `  cat input.bin | charconv convert --src utf8 --dst utf16le > out.bin`,
		RunE:    runConvert,
	}
	convertFlags.src = cmd.Flags().String("src", "", "source encoding (required)")
	convertFlags.dst = cmd.Flags().String("dst", "", "destination encoding (required)")
	convertFlags.mode = cmd.Flags().StringP("mode", "m", "validating", "execution mode: validating|pureascii|correct")
	convertFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	cmd.MarkFlagRequired("src")
	cmd.MarkFlagRequired("dst")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(*convertFlags.src)
	if err != nil {
		return err
	}
	dstEnc, err := parseEncoding(*convertFlags.dst)
	if err != nil {
		return err
	}
	mode, err := parseMode(*convertFlags.mode)
	if err != nil {
		return err
	}

	src, err := readInput(*convertFlags.source)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	dst := make([]byte, charconv.LengthFor(srcEnc, dstEnc, src))
	var written int
	var convErr error

	switch mode {
	case charconv.PureAscii:
		result := charconv.ConvertPure(srcEnc, dstEnc, src, dst)
		written = result.OutputWritten
	case charconv.Correct:
		written = charconv.ConvertCorrect(srcEnc, dstEnc, src, dst)
	default:
		result := charconv.Convert(srcEnc, dstEnc, src, dst)
		written = result.OutputWritten
		if !result.Ok() {
			convErr = fmt.Errorf("conversion failed at input offset %d: %s", result.InputConsumed, result.Kind)
		}
	}

	logger.Info("convert", "src", srcEnc.String(), "dst", dstEnc.String(), "mode", mode.String(), "written", written)

	if err := writeOutput(*convertFlags.output, dst[:written]); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return convErr
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
