// Package codegen emits the vendor command-language program for a validated
// trajectory. Generation is a pure function of the trajectory: it performs
// no validation of its own and produces byte-identical output on every call.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/armlink-dev/armlink/internal/domain/entities"
)

// Generate renders the complete program text. The emission order is fixed:
// header comments, blank line, BASE, TOOL, blank line, then one command per
// point in insertion order, each line newline-terminated.
func Generate(t *entities.ValidatedTrajectory) string {
	var b strings.Builder
	b.WriteString("// Generated code for " + t.Robot().Model() + "\n")
	b.WriteString("// Firmware version: " + t.Firmware().String() + "\n")
	b.WriteByte('\n')
	b.WriteString("BASE " + t.BaseFrame().Format() + "\n")
	b.WriteString("TOOL " + t.ToolFrame().Format() + "\n")
	b.WriteByte('\n')
	for _, p := range t.Points() {
		b.WriteString(p.Command(t.Firmware()) + "\n")
	}
	return b.String()
}

// WriteProgram renders the program text to a writer.
func WriteProgram(w io.Writer, t *entities.ValidatedTrajectory) error {
	if _, err := io.WriteString(w, Generate(t)); err != nil {
		return fmt.Errorf("writing program: %w", err)
	}
	return nil
}
