package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bookstore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bookstore v%s\n", version)
	},
}
