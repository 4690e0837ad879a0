package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of armlink",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("armlink version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
