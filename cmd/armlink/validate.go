package main

import (
	"github.com/spf13/cobra"
)

// validateCmd checks documents without emitting any program files.
var validateCmd = &cobra.Command{
	Use:   "validate <document>...",
	Short: "Validate motion documents without generating programs",
	Long: `Run every document through the same validation pipeline as generate,
but emit no program files. Useful as a CI gate for motion document
repositories.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, args, true)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addPipelineFlags(validateCmd)
}
