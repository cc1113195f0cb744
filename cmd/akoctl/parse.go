package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako"
	"github.com/zalgonoise/ako/cmd/akoctl/logger"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print it back in round-trip form",
		Long: `parse reads a document (from a file, or standard input when the
file argument is "-" or omitted), parses it, and re-serializes it in the
library's compact default form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(firstArg(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runParse(input string) error {
	source, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Debug("parsing", "bytes", len(source))

	root := ako.Parse(source)
	if root.IsError() {
		return fmt.Errorf("parse error: %s", root.Err())
	}

	out, err := ako.Serialize(root, 0)
	if err != nil {
		return fmt.Errorf("serialize error: %w", err)
	}
	printInfo("%s\n", out)
	return nil
}
