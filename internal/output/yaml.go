package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/armlink-dev/armlink/internal/engine"
)

// YAMLWriter renders a run report as YAML.
type YAMLWriter struct {
	writer io.Writer
}

// NewYAMLWriter creates a new YAML report writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{writer: w}
}

// Write renders the report.
func (y *YAMLWriter) Write(report *engine.RunReport) error {
	enc := yaml.NewEncoder(y.writer)
	defer func() {
		_ = enc.Close() // Best-effort cleanup
	}()
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return nil
}
