// Package engine runs motion documents through the full pipeline: load,
// build, validate, generate, write. Documents are independent units of work
// with no shared mutable state, so the engine parallelizes across documents
// and nowhere else.
package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/armlink-dev/armlink/internal/domain/values"
)

// DocumentStatus classifies the outcome of processing one document.
type DocumentStatus string

const (
	// StatusGenerated means the document validated and its program was emitted.
	StatusGenerated DocumentStatus = "generated"
	// StatusValid means the document validated in validate-only mode.
	StatusValid DocumentStatus = "valid"
	// StatusInvalid means a domain constraint rejected the document.
	StatusInvalid DocumentStatus = "invalid"
	// StatusError means an infrastructure failure (unreadable file, write error).
	StatusError DocumentStatus = "error"
	// StatusSkipped means the document filter excluded the document.
	StatusSkipped DocumentStatus = "skipped"
)

// DocumentResult is the outcome of processing one motion document.
type DocumentResult struct {
	Index      int            `json:"-" yaml:"-"`
	Path       string         `json:"path" yaml:"path"`
	Name       string         `json:"name" yaml:"name"`
	Robot      string         `json:"robot,omitempty" yaml:"robot,omitempty"`
	Firmware   string         `json:"firmware,omitempty" yaml:"firmware,omitempty"`
	Points     int            `json:"points,omitempty" yaml:"points,omitempty"`
	Status     DocumentStatus `json:"status" yaml:"status"`
	Message    string         `json:"message,omitempty" yaml:"message,omitempty"`
	Advisories []string       `json:"advisories,omitempty" yaml:"advisories,omitempty"`
	OutputPath string         `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Duration   time.Duration  `json:"duration_ms" yaml:"duration_ms"`
}

// RunSummary provides aggregate statistics about a batch run.
type RunSummary struct {
	TotalDocuments int `json:"total_documents" yaml:"total_documents"`
	Generated      int `json:"generated" yaml:"generated"`
	Valid          int `json:"valid" yaml:"valid"`
	Invalid        int `json:"invalid" yaml:"invalid"`
	Errors         int `json:"errors" yaml:"errors"`
	Skipped        int `json:"skipped" yaml:"skipped"`
}

// RunReport is the complete result of one batch run. Workers append results
// concurrently through Add; everything else happens before the pool starts
// or after it drains.
type RunReport struct {
	GenerationID values.GenerationID `json:"generation_id" yaml:"generation_id"`
	StartTime    time.Time           `json:"start_time" yaml:"start_time"`
	EndTime      time.Time           `json:"end_time" yaml:"end_time"`
	Duration     time.Duration       `json:"duration_ms" yaml:"duration_ms"`
	Documents    []DocumentResult    `json:"documents" yaml:"documents"`
	Summary      RunSummary          `json:"summary" yaml:"summary"`

	mu sync.Mutex
}

// NewRunReport creates a report with a fresh generation ID.
func NewRunReport() *RunReport {
	return &RunReport{
		GenerationID: values.NewGenerationID(),
		StartTime:    time.Now(),
	}
}

// Add appends one document result. Safe for concurrent use.
func (r *RunReport) Add(result DocumentResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Documents = append(r.Documents, result)
}

// Finish restores input order, computes the summary and stamps the end time.
// Called once, after all workers have drained.
func (r *RunReport) Finish() {
	sort.Slice(r.Documents, func(i, j int) bool {
		return r.Documents[i].Index < r.Documents[j].Index
	})

	summary := RunSummary{TotalDocuments: len(r.Documents)}
	for _, d := range r.Documents {
		switch d.Status {
		case StatusGenerated:
			summary.Generated++
		case StatusValid:
			summary.Valid++
		case StatusInvalid:
			summary.Invalid++
		case StatusError:
			summary.Errors++
		case StatusSkipped:
			summary.Skipped++
		}
	}
	r.Summary = summary
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// Failed reports whether any document was rejected or errored.
func (r *RunReport) Failed() bool {
	return r.Summary.Invalid > 0 || r.Summary.Errors > 0
}
