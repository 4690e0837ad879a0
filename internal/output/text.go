package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/armlink-dev/armlink/internal/engine"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TextWriter renders a run report as a human-readable summary.
type TextWriter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (t *TextWriter) colorize(text, code string) string {
	if !t.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (t *TextWriter) statusLabel(status engine.DocumentStatus) string {
	switch status {
	case engine.StatusGenerated, engine.StatusValid:
		return t.colorize(strings.ToUpper(string(status)), colorGreen)
	case engine.StatusInvalid:
		return t.colorize("INVALID", colorRed)
	case engine.StatusError:
		return t.colorize("ERROR", colorRed)
	case engine.StatusSkipped:
		return t.colorize("SKIPPED", colorGray)
	default:
		return string(status)
	}
}

// Write renders the report.
//
//nolint:errcheck // Text report errors are non-critical (best-effort terminal output)
func (t *TextWriter) Write(report *engine.RunReport) error {
	fmt.Fprintln(t.writer, t.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(t.writer, "Generation run: %s\n", t.colorize(report.GenerationID.String(), colorBold))
	fmt.Fprintf(t.writer, "Started:  %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(t.writer, "Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(t.writer)

	if len(report.Documents) == 0 {
		fmt.Fprintln(t.writer, "No documents processed.")
		return nil
	}

	fmt.Fprintln(t.writer, t.colorize("Documents:", colorBold))
	fmt.Fprintln(t.writer, t.colorize(strings.Repeat("─", 80), colorGray))
	for _, doc := range report.Documents {
		fmt.Fprintf(t.writer, "%-10s %s", t.statusLabel(doc.Status), doc.Name)
		if doc.Robot != "" {
			fmt.Fprintf(t.writer, "  (%s, firmware %s, %d points)", doc.Robot, doc.Firmware, doc.Points)
		}
		fmt.Fprintln(t.writer)
		if doc.Message != "" {
			for _, line := range strings.Split(doc.Message, "\n") {
				fmt.Fprintf(t.writer, "           %s\n", t.colorize(line, colorRed))
			}
		}
		for _, adv := range doc.Advisories {
			fmt.Fprintf(t.writer, "           %s\n", t.colorize("advisory: "+adv, colorYellow))
		}
		if doc.OutputPath != "" {
			fmt.Fprintf(t.writer, "           → %s\n", doc.OutputPath)
		}
	}

	fmt.Fprintln(t.writer)
	s := report.Summary
	fmt.Fprintf(t.writer, "Total: %d   Generated: %d   Valid: %d   Invalid: %d   Errors: %d   Skipped: %d\n",
		s.TotalDocuments, s.Generated, s.Valid, s.Invalid, s.Errors, s.Skipped)
	return nil
}
