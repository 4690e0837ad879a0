package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "robot": "NovaTech RT-500",
  "firmware_version": "3.2",
  "base_frame": [0, 0, 0, 0, 0, 0],
  "tool_frame": [0, 0, 150, 0, 0, 0],
  "trajectory": [
    {"type": "linear", "position": [500, 200, 300, 0, 90, 0], "speed": 100, "acceleration": 75}
  ]
}`

const invalidSpeedDoc = `{
  "robot": "NovaTech RT-500",
  "firmware_version": "3.2",
  "base_frame": [0, 0, 0, 0, 0, 0],
  "tool_frame": [0, 0, 150, 0, 0, 0],
  "trajectory": [
    {"type": "linear", "position": [500, 200, 300, 0, 90, 0], "speed": -5}
  ]
}`

const outOfReachDoc = `{
  "robot": "NovaTech RT-500",
  "firmware_version": "3.2",
  "base_frame": [0, 0, 0, 0, 0, 0],
  "tool_frame": [0, 0, 150, 0, 0, 0],
  "trajectory": [
    {"type": "linear", "position": [2500, 0, 0, 0, 0, 0], "speed": 100}
  ]
}`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Engine_Run_GeneratesPrograms(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "weld-pass.json", validDoc)

	eng := New(Config{Workers: 2, OutputDir: dir})
	report, err := eng.Run(context.Background(), []string{path})

	require.NoError(t, err)
	require.Len(t, report.Documents, 1)

	result := report.Documents[0]
	assert.Equal(t, StatusGenerated, result.Status)
	assert.Equal(t, "weld-pass", result.Name)
	assert.Equal(t, "NovaTech RT-500", result.Robot)
	assert.Equal(t, 1, result.Points)

	program, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, `// Generated code for NovaTech RT-500
// Firmware version: 3.2

BASE P[0.0,0.0,0.0,0.0,0.0,0.0]
TOOL P[0.0,0.0,150.0,0.0,0.0,0.0]

MOVL P[500.0,200.0,300.0,0.0,90.0,0.0] SPD=100 ACC=75
`, string(program))
}

func Test_Engine_Run_InvalidDocumentProducesNoOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "broken.json", invalidSpeedDoc)

	eng := New(Config{OutputDir: dir})
	report, err := eng.Run(context.Background(), []string{path})

	require.NoError(t, err)
	require.Len(t, report.Documents, 1)
	assert.Equal(t, StatusInvalid, report.Documents[0].Status)
	assert.Contains(t, report.Documents[0].Message, "speed must be positive")
	assert.Empty(t, report.Documents[0].OutputPath)
	assert.True(t, report.Failed())

	_, statErr := os.Stat(filepath.Join(dir, "broken"+DefaultExtension))
	assert.True(t, os.IsNotExist(statErr), "no partial output for invalid documents")
}

func Test_Engine_Run_EmptyTrajectory(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "empty.json", `{
  "robot": "NovaTech RT-500",
  "firmware_version": "3.2",
  "base_frame": [0, 0, 0, 0, 0, 0],
  "tool_frame": [0, 0, 150, 0, 0, 0],
  "trajectory": []
}`)

	eng := New(Config{OutputDir: dir})
	report, err := eng.Run(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, report.Documents[0].Status)
	assert.Contains(t, report.Documents[0].Message, "at least one point")

	_, statErr := os.Stat(filepath.Join(dir, "empty"+DefaultExtension))
	assert.True(t, os.IsNotExist(statErr), "no output for an empty trajectory")
}

func Test_Engine_Run_MixedBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "ok-1.json", validDoc),
		writeDoc(t, dir, "broken.json", invalidSpeedDoc),
		writeDoc(t, dir, "ok-2.json", validDoc),
		filepath.Join(dir, "missing.json"),
	}

	eng := New(Config{Workers: 4, OutputDir: dir})
	report, err := eng.Run(context.Background(), paths)

	require.NoError(t, err)
	require.Len(t, report.Documents, 4)

	// Report preserves input order regardless of worker scheduling.
	assert.Equal(t, "ok-1", report.Documents[0].Name)
	assert.Equal(t, "broken", report.Documents[1].Name)
	assert.Equal(t, "ok-2", report.Documents[2].Name)
	assert.Equal(t, "missing", report.Documents[3].Name)

	assert.Equal(t, 2, report.Summary.Generated)
	assert.Equal(t, 1, report.Summary.Invalid)
	assert.Equal(t, 1, report.Summary.Errors)
}

func Test_Engine_Run_ValidateOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "weld-pass.json", validDoc)

	eng := New(Config{OutputDir: dir, ValidateOnly: true})
	report, err := eng.Run(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, StatusValid, report.Documents[0].Status)
	assert.Empty(t, report.Documents[0].OutputPath)

	_, statErr := os.Stat(filepath.Join(dir, "weld-pass"+DefaultExtension))
	assert.True(t, os.IsNotExist(statErr))
}

func Test_Engine_Run_Filter(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "weld-pass.json", validDoc)

	program, err := CompileFilter(`points > 5`)
	require.NoError(t, err)

	eng := New(Config{OutputDir: dir, Filter: program})
	report, err := eng.Run(context.Background(), []string{path})

	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, report.Documents[0].Status)
	assert.Equal(t, 1, report.Summary.Skipped)
	assert.False(t, report.Failed(), "skipped documents are not failures")
}

func Test_Engine_Run_ReachPolicy(t *testing.T) {
	t.Run("warn records advisory and generates", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDoc(t, dir, "far.json", outOfReachDoc)

		eng := New(Config{OutputDir: dir, ReachPolicy: ReachWarn})
		report, err := eng.Run(context.Background(), []string{path})

		require.NoError(t, err)
		result := report.Documents[0]
		assert.Equal(t, StatusGenerated, result.Status)
		require.Len(t, result.Advisories, 1)
		assert.Contains(t, result.Advisories[0], "workspace radius")
	})

	t.Run("reject blocks generation", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDoc(t, dir, "far.json", outOfReachDoc)

		eng := New(Config{OutputDir: dir, ReachPolicy: ReachReject})
		report, err := eng.Run(context.Background(), []string{path})

		require.NoError(t, err)
		assert.Equal(t, StatusInvalid, report.Documents[0].Status)
		assert.Contains(t, report.Documents[0].Message, "workspace radius")
	})
}

func Test_Engine_Run_ManyDocumentsInParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 20; i++ {
		paths = append(paths, writeDoc(t, dir, fmt.Sprintf("doc-%02d.json", i), validDoc))
	}

	eng := New(Config{Workers: 8, OutputDir: dir})
	report, err := eng.Run(context.Background(), paths)

	require.NoError(t, err)
	assert.Equal(t, 20, report.Summary.Generated)

	// Independent documents produce identical programs.
	first, err := os.ReadFile(report.Documents[0].OutputPath)
	require.NoError(t, err)
	last, err := os.ReadFile(report.Documents[19].OutputPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(last))
	assert.True(t, strings.HasPrefix(string(first), "// Generated code for"))
}

func Test_ParseReachPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    ReachPolicy
		wantErr bool
	}{
		{"warn", ReachWarn, false},
		{"", ReachWarn, false},
		{"reject", ReachReject, false},
		{"strict", ReachWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReachPolicy(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
