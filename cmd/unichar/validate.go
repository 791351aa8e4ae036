package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidalcode/unichar/internal/clilog"
	"github.com/tidalcode/unichar/pkg/transcode"
)

var (
	validateEncoding string
	validateEndian   string
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check whether a file (or stdin) is a well-formed code unit sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateEncoding, "encoding", "", "encoding to validate against")
	validateCmd.Flags().StringVar(&validateEndian, "source-endian", "native", "endian of a native-order UTF16/UTF32 source (le, be, native)")
	_ = validateCmd.MarkFlagRequired("encoding")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	enc, err := parseEncoding(validateEncoding)
	if err != nil {
		return err
	}
	endian, err := parseEndian(validateEndian)
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	res := transcode.Validate(enc, input, endian)
	if res.OK() {
		clilog.Info("well-formed", "encoding", enc, "units", res.Input)
		return nil
	}
	clilog.Error("ill-formed", "encoding", enc, "error", res.Error, "offset", res.Input)
	return fmt.Errorf("%s at code unit offset %d", res.Error, res.Input)
}
