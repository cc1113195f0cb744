package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako"
	"github.com/zalgonoise/ako/cmd/akoctl/logger"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <path> [file]",
		Short: "Resolve a dotted path against a document and print the result",
		Long: `query reads a document (from a file, or standard input when the
file argument is "-" or omitted), parses it, and resolves path against the
parsed tree, printing the resolved node in the library's default
serialization form.

Note: the printed form always renders as if the resolved node were the
document root (e.g. a resolved table prints without surrounding brackets,
and a resolved array never collapses to the vector shorthand), since
akoctl reuses Serialize's top-level rendering rather than duplicating its
nested-value logic.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var file string
			if len(args) == 2 {
				file = args[1]
			}
			return runQuery(file, path)
		},
	}
}

func init() {
	rootCmd.AddCommand(newQueryCmd())
}

func runQuery(input, path string) error {
	source, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Debug("querying", "bytes", len(source), "path", path)

	root := ako.Parse(source)
	if root.IsError() {
		return fmt.Errorf("parse error: %s", root.Err())
	}

	node, ok := ako.Query(root, path)
	if !ok {
		return fmt.Errorf("path not found: %s", path)
	}

	out, err := ako.Serialize(node, 0)
	if err != nil {
		return fmt.Errorf("serialize error: %w", err)
	}
	printInfo("%s\n", out)
	return nil
}
