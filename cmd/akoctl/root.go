package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako/cmd/akoctl/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "akoctl",
	Short: "Parse, validate, query, and format ako configuration documents",
	Long: `akoctl is the command-line front-end for the ako configuration
format: a compact, human-authored document format supporting an implicit
top-level table, dotted-key nesting, value-first boolean/null shorthands,
short-type literals, and a numeric vector shorthand.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable debug logging to stderr")
}

func execute() {
	cobra.OnInitialize(func() { logger.Init(verbose) })
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo writes a formatted message to stdout.
func printInfo(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// printError writes a formatted message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// readInput reads document source from name: "-" or an empty name reads
// standard input (spec.md §6's CLI behavior of slurping stdin when the
// input name is "-" or not supplied), anything else is read as a file
// path.
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
