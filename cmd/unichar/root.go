package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidalcode/unichar/internal/clilog"
)

var (
	logLevel  string
	noColor   bool
	logSource bool
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "unichar",
	Short:   "Convert and validate text between LATIN1, UTF-8, UTF-16, and UTF-32",
	Long:    "unichar drives pkg/transcode's validate/length/convert engine against files or stdin, demonstrating the library end to end.",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		clilog.Init(clilog.Options{Level: logLevel, NoColor: noColor, Source: logSource})
	},
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colour in log output")
	rootCmd.PersistentFlags().BoolVar(&logSource, "log-source", false, "include source file:line in log output")
}
