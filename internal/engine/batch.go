package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/expr-lang/expr/vm"
	"golang.org/x/sync/errgroup"

	"github.com/armlink-dev/armlink/internal/codegen"
	"github.com/armlink-dev/armlink/internal/config"
)

// ReachPolicy decides what a workspace-reach advisory does.
type ReachPolicy int

const (
	// ReachWarn records and logs advisories without blocking generation.
	ReachWarn ReachPolicy = iota
	// ReachReject turns advisories on linear targets into hard errors.
	ReachReject
)

// ParseReachPolicy parses a reach policy name.
func ParseReachPolicy(s string) (ReachPolicy, error) {
	switch s {
	case "", "warn":
		return ReachWarn, nil
	case "reject":
		return ReachReject, nil
	default:
		return ReachWarn, fmt.Errorf("unknown reach policy %q (supported: warn, reject)", s)
	}
}

// Config holds batch engine settings.
type Config struct {
	// Workers is the worker pool size; <=0 means one worker per CPU.
	Workers int
	// OutputDir receives generated programs. Empty means alongside each input.
	OutputDir string
	// Extension for generated program files, including the dot.
	Extension string
	// ReachPolicy for workspace advisories.
	ReachPolicy ReachPolicy
	// Filter optionally restricts which documents are processed.
	Filter *vm.Program
	// ValidateOnly skips code emission; documents are only checked.
	ValidateOnly bool
}

// DefaultExtension is used when Config.Extension is empty.
const DefaultExtension = ".rt5"

// Engine processes batches of motion documents.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	return &Engine{cfg: cfg}
}

type job struct {
	index int
	path  string
}

// Run processes every document path on a worker pool and returns the report.
// Documents share nothing, so pool workers need no coordination beyond the
// job channel and the report's own mutex. A context cancellation stops the
// feed; results already produced stay in the report.
func (e *Engine) Run(ctx context.Context, paths []string) (*RunReport, error) {
	report := NewRunReport()

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) && len(paths) > 0 {
		workers = len(paths)
	}

	slog.Debug("starting batch run",
		"generation_id", report.GenerationID.String(),
		"documents", len(paths),
		"workers", workers,
	)

	g, gCtx := errgroup.WithContext(ctx)
	jobs := make(chan job)

	g.Go(func() error {
		defer close(jobs)
		for i, p := range paths {
			select {
			case jobs <- job{index: i, path: p}:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				report.Add(e.processDocument(j.index, j.path))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch run aborted: %w", err)
	}

	report.Finish()
	return report, nil
}

// processDocument runs one document through the pipeline. All expected
// domain failures end up as a result status, never as a worker error.
func (e *Engine) processDocument(index int, path string) DocumentResult {
	start := time.Now()
	result := DocumentResult{Index: index, Path: path, Name: config.DocumentName(path)}

	finish := func(status DocumentStatus, message string) DocumentResult {
		result.Status = status
		result.Message = message
		result.Duration = time.Since(start)
		return result
	}

	doc, err := config.LoadDocument(path)
	if err != nil {
		slog.Error("failed to load document", "path", path, "error", err)
		return finish(StatusError, err.Error())
	}
	result.Robot = doc.Robot
	result.Firmware = doc.FirmwareVersion
	result.Points = len(doc.Trajectory)

	if e.cfg.Filter != nil {
		matched, err := matchesFilter(e.cfg.Filter, DocumentEnv{
			Name:     doc.Name,
			Robot:    doc.Robot,
			Firmware: doc.FirmwareVersion,
			Points:   len(doc.Trajectory),
		})
		if err != nil {
			return finish(StatusError, err.Error())
		}
		if !matched {
			slog.Debug("document filtered out", "name", doc.Name)
			return finish(StatusSkipped, "excluded by filter expression")
		}
	}

	trajectory, advisories, err := config.BuildTrajectory(doc, config.BuildOptions{
		RejectOutOfReach: e.cfg.ReachPolicy == ReachReject,
	})
	if err != nil {
		return finish(StatusInvalid, err.Error())
	}
	for _, a := range advisories {
		slog.Warn("workspace reach advisory", "document", doc.Name, "advisory", a.String())
		result.Advisories = append(result.Advisories, a.String())
	}

	validated, err := trajectory.Validate()
	if err != nil {
		return finish(StatusInvalid, err.Error())
	}

	if e.cfg.ValidateOnly {
		return finish(StatusValid, "")
	}

	program := codegen.Generate(validated)
	outPath := e.outputPath(path, doc.Name)
	if err := os.WriteFile(outPath, []byte(program), 0o644); err != nil {
		slog.Error("failed to write program", "path", outPath, "error", err)
		return finish(StatusError, fmt.Sprintf("writing program: %v", err))
	}
	result.OutputPath = outPath

	slog.Info("program generated",
		"document", doc.Name,
		"robot", doc.Robot,
		"firmware", doc.FirmwareVersion,
		"points", trajectory.Len(),
		"output", outPath,
	)
	return finish(StatusGenerated, "")
}

// outputPath places the generated program next to its input unless an
// output directory is configured.
func (e *Engine) outputPath(inputPath, name string) string {
	dir := e.cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, name+e.cfg.Extension)
}
