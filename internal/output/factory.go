// Package output renders batch run reports in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/armlink-dev/armlink/internal/engine"
)

// ReportWriter renders a run report to its writer.
type ReportWriter interface {
	Write(report *engine.RunReport) error
}

// NewWriter returns a report writer for the given format name.
func NewWriter(format string, w io.Writer) (ReportWriter, error) {
	switch format {
	case "text":
		return NewTextWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	case "yaml":
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats returns the list of available format names.
func SupportedFormats() []string {
	return []string{"text", "json", "yaml"}
}
