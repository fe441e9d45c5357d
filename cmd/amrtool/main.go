// ABOUTME: Entry point for the amrtool CLI
// ABOUTME: Dispatches to the cobra root command
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
