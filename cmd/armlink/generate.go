package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/armlink-dev/armlink/internal/engine"
	"github.com/armlink-dev/armlink/internal/output"
)

var (
	outputDir   string
	format      string
	reportFile  string
	workers     int
	filterExpr  string
	reachPolicy string
)

// generateCmd runs the full pipeline: load, validate, generate, write.
var generateCmd = &cobra.Command{
	Use:   "generate <document>...",
	Short: "Generate controller programs from motion documents",
	Long: `Load one or more motion documents (YAML or JSON), validate them against
the robot model and firmware rules, and write one controller program per
valid document. Documents are processed in parallel; a document that fails
validation produces no output at all.

Filtering:
  --filter 'robot == "NovaTech RT-500"'   Process matching documents only
  --filter 'points > 10 && firmware == "3.2"'
  Available variables: name, robot, firmware, points`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(cmd, args, false)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addPipelineFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for generated programs (default: alongside each input)")
}

// addPipelineFlags registers the flags shared by generate and validate.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, json, yaml")
	cmd.Flags().StringVar(&reportFile, "report", "", "Report file path (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size (default: one per CPU)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "Document filter expression")
	cmd.Flags().StringVar(&reachPolicy, "reach-policy", "warn", "Workspace reach policy: warn, reject")
}

// runPipeline implements the generate and validate commands.
func runPipeline(cmd *cobra.Command, paths []string, validateOnly bool) error {
	// Config file values back any flag the user did not set explicitly.
	if !cmd.Flags().Changed("format") {
		format = viper.GetString("format")
	}
	if !cmd.Flags().Changed("workers") {
		workers = viper.GetInt("workers")
	}
	if !cmd.Flags().Changed("reach-policy") {
		reachPolicy = viper.GetString("reach_policy")
	}
	if flag := cmd.Flags().Lookup("output-dir"); flag != nil && !flag.Changed {
		outputDir = viper.GetString("output_dir")
	}

	policy, err := engine.ParseReachPolicy(reachPolicy)
	if err != nil {
		return err
	}

	var filter *vm.Program
	if filterExpr != "" {
		if filter, err = engine.CompileFilter(filterExpr); err != nil {
			return err
		}
	}

	slog.Info("processing documents", "count", len(paths), "validate_only", validateOnly)

	eng := engine.New(engine.Config{
		Workers:      workers,
		OutputDir:    outputDir,
		ReachPolicy:  policy,
		Filter:       filter,
		ValidateOnly: validateOnly,
	})
	report, err := eng.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if err := writeReport(report); err != nil {
		return err
	}

	if report.Failed() {
		return fmt.Errorf(
			"%d of %d documents failed",
			report.Summary.Invalid+report.Summary.Errors, report.Summary.TotalDocuments,
		)
	}
	return nil
}

// writeReport renders the run report to stdout or the configured file.
func writeReport(report *engine.RunReport) error {
	dest := os.Stdout
	if reportFile != "" {
		f, err := os.Create(reportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() {
			_ = f.Close() // Best-effort cleanup
		}()
		dest = f
	}

	writer, err := output.NewWriter(format, dest)
	if err != nil {
		return err
	}
	return writer.Write(report)
}
