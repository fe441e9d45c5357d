// ABOUTME: amrtool version subcommand
// ABOUTME: Prints the build version
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openamr/amr-go/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (%s)\n", version.Product, version.Version, version.Manufacturer)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
