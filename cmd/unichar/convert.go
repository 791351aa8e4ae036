package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidalcode/unichar/internal/clilog"
	"github.com/tidalcode/unichar/pkg/cpufeature"
	"github.com/tidalcode/unichar/pkg/encoding"
	"github.com/tidalcode/unichar/pkg/transcode"
)

var (
	convertFrom         string
	convertTo           string
	convertSourceEndian string
	convertDestEndian   string
	convertPolicy       string
	convertOutput       string
)

var convertCmd = &cobra.Command{
	Use:   "convert [FILE]",
	Short: "Transcode a file (or stdin) from one encoding to another",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source encoding (latin1, utf8, utf16, utf16le, utf16be, utf32)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "destination encoding")
	convertCmd.Flags().StringVar(&convertSourceEndian, "source-endian", "native", "endian of a native-order UTF16/UTF32 source (le, be, native)")
	convertCmd.Flags().StringVar(&convertDestEndian, "dest-endian", "native", "endian of a native-order UTF16/UTF32 destination (le, be, native)")
	convertCmd.Flags().StringVar(&convertPolicy, "policy", "default", "process policy (default, write-all-correct-1, write-all-correct-2, assume-valid, result-only)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (defaults to stdout)")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(convertFrom)
	if err != nil {
		return err
	}
	dstEnc, err := parseEncoding(convertTo)
	if err != nil {
		return err
	}
	srcEndian, err := parseEndian(convertSourceEndian)
	if err != nil {
		return err
	}
	destEndian, err := parseEndian(convertDestEndian)
	if err != nil {
		return err
	}
	policy, err := parsePolicy(convertPolicy)
	if err != nil {
		return err
	}
	opt := encoding.Option{SourceEndian: srcEndian, DestEndian: destEndian}

	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	clilog.Debug("transcoding", "from", srcEnc, "to", dstEnc, "bytes", len(input), "hardware", cpufeature.Summary())

	out, res := transcode.ConvertToBytesWithOption(srcEnc, dstEnc, policy, input, opt)
	if !res.OK() {
		clilog.Error("convert failed", "error", res.Error, "offset", res.Input)
		return fmt.Errorf("%s at source offset %d", res.Error, res.Input)
	}

	return writeOutput(convertOutput, out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
