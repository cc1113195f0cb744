package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako"
	"github.com/zalgonoise/ako/cmd/akoctl/logger"
)

var (
	fmtPretty bool
	fmtSpaces bool
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse a document and re-serialize it, pretty-printed with --pretty",
		Long: `fmt reads a document (from a file, or standard input when the
file argument is "-" or omitted), parses it, and re-serializes it with
the --pretty/--spaces flags mapped onto ako.Flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(firstArg(args))
		},
	}
	cmd.Flags().BoolVar(&fmtPretty, "pretty", false, "Use newline-and-indent pretty printing")
	cmd.Flags().BoolVar(&fmtSpaces, "spaces", false, "Indent with four spaces instead of a tab (requires --pretty)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newFmtCmd())
}

func runFmt(input string) error {
	source, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Debug("formatting", "bytes", len(source), "pretty", fmtPretty, "spaces", fmtSpaces)

	root := ako.Parse(source)
	if root.IsError() {
		return fmt.Errorf("parse error: %s", root.Err())
	}

	var flags ako.Flags
	if fmtPretty {
		flags |= ako.FormatPretty
	}
	if fmtSpaces {
		flags |= ako.UseSpaces
	}

	out, err := ako.Serialize(root, flags)
	if err != nil {
		return fmt.Errorf("serialize error: %w", err)
	}
	printInfo("%s\n", out)
	return nil
}
