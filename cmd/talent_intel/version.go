package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Actual version can be set at build time via -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "talent_intel version: %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
