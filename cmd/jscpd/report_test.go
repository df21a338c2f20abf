package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func sampleClone() core.Clone {
	return core.Clone{
		Format: "go",
		Tokens: 20,
		DuplicationA: core.CloneLocation{
			SourceID: "a.go",
			Start:    core.Position{Line: 1, Column: 1},
			End:      core.Position{Line: 5, Column: 1},
		},
		DuplicationB: core.CloneLocation{
			SourceID: "b.go",
			Start:    core.Position{Line: 10, Column: 1},
			End:      core.Position{Line: 14, Column: 1},
		},
	}
}

func TestConsoleReporter_ReportsNoClonesMessage(t *testing.T) {
	out := captureStdout(t, func() {
		NewConsoleReporter().Report(nil, *core.NewStatistic())
	})
	assert.Contains(t, out, "No clones found.")
}

func TestConsoleReporter_ReportsCloneLocations(t *testing.T) {
	c := sampleClone()
	out := captureStdout(t, func() {
		NewConsoleReporter().Report([]core.Clone{c}, *core.NewStatistic())
	})
	assert.Contains(t, out, "a.go")
	assert.Contains(t, out, "b.go")
	assert.Contains(t, out, "20 tokens")
}

func TestConsoleReporter_ReportsHotspotsByDescendingDuplicatedLines(t *testing.T) {
	hot := sampleClone()
	hot.DuplicationA.SourceID = "hot.go"
	hot.DuplicationA.End.Line = 50
	hot.DuplicationB.SourceID = "other.go"

	cold := sampleClone()
	cold.DuplicationA.SourceID = "cold.go"
	cold.DuplicationB.SourceID = "other.go"

	out := captureStdout(t, func() {
		NewConsoleReporter().Report([]core.Clone{hot, cold}, *core.NewStatistic())
	})

	assert.Contains(t, out, "Duplication hotspots (lines):")
	hotIdx := strings.Index(out, "hot.go")
	coldIdx := strings.Index(out, "cold.go")
	require.NotEqual(t, -1, hotIdx)
	require.NotEqual(t, -1, coldIdx)
	assert.Less(t, hotIdx, coldIdx)
}

func TestConsoleReporter_NoHotspotsSectionWhenNoClones(t *testing.T) {
	out := captureStdout(t, func() {
		NewConsoleReporter().Report(nil, *core.NewStatistic())
	})
	assert.NotContains(t, out, "Duplication hotspots")
}

func TestJSONReporter_WritesReportFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "nested", "report.json")
	r := NewJSONReporter(outPath)

	c := sampleClone()
	stat := core.NewStatistic()
	stat.AddSource("go", 20, 100)

	captureStdout(t, func() {
		r.Report([]core.Clone{c}, *stat)
	})

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Clones, 1)
	assert.Equal(t, "a.go", decoded.Clones[0].A.SourceID)
	assert.Equal(t, "b.go", decoded.Clones[0].B.SourceID)
	assert.Equal(t, 20, decoded.Clones[0].Tokens)
}

func TestToJSONLocation_CopiesAllFields(t *testing.T) {
	loc := core.CloneLocation{
		SourceID: "a.go",
		Start:    core.Position{Line: 1, Column: 2},
		End:      core.Position{Line: 3, Column: 4},
		Fragment: "func x() {}",
	}
	got := toJSONLocation(loc)
	assert.Equal(t, "a.go", got.SourceID)
	assert.Equal(t, 1, got.StartLine)
	assert.Equal(t, 2, got.StartCol)
	assert.Equal(t, 3, got.EndLine)
	assert.Equal(t, 4, got.EndCol)
	assert.Equal(t, "func x() {}", got.Fragment)
}

func TestGitHubReporter_EmitsWorkflowAnnotation(t *testing.T) {
	c := sampleClone()
	var buf bytes.Buffer
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	NewGitHubReporter("error").Report([]core.Clone{c}, *core.NewStatistic())

	require.NoError(t, w.Close())
	os.Stdout = orig
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "::error file=b.go,line=10,endLine=14")
	assert.Contains(t, out, "also at: a.go:1")
}

func TestNewGitHubReporter_DefaultsLevelToWarning(t *testing.T) {
	r := NewGitHubReporter("")
	assert.Equal(t, "warning", r.Level)
}
