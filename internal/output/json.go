package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/armlink-dev/armlink/internal/engine"
)

// JSONWriter renders a run report as indented JSON.
type JSONWriter struct {
	writer io.Writer
}

// NewJSONWriter creates a new JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{writer: w}
}

// Write renders the report.
func (j *JSONWriter) Write(report *engine.RunReport) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	return nil
}
