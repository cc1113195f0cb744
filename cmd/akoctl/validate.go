package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako"
	"github.com/zalgonoise/ako/cmd/akoctl/logger"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [file]",
		Aliases: []string{"check"},
		Short:   "Check a document for syntax errors without printing it",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(firstArg(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func runValidate(input string) error {
	source, err := readInput(input)
	if err != nil {
		return err
	}
	logger.Debug("validating", "bytes", len(source))

	root := ako.Parse(source)
	if root.IsError() {
		return fmt.Errorf("invalid document: %s", root.Err())
	}

	printInfo("ok\n")
	return nil
}
