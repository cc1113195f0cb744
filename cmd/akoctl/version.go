package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalgonoise/ako"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ako library version",
	Run: func(cmd *cobra.Command, args []string) {
		major, minor, patch := ako.Version()
		fmt.Printf("akoctl %d.%d.%d\n", major, minor, patch)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
