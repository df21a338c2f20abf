package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/moinsen-dev/jscpd2025/core"
)

// Theme is the console reporter's color scheme, styled the same way the
// teacher's output.go styles its own terminal output.
type Theme struct {
	Score    lipgloss.Style
	Hash     lipgloss.Style
	Location lipgloss.Style
	LineNum  lipgloss.Style
	Summary  lipgloss.Style
	Dim      lipgloss.Style
}

var DefaultTheme = Theme{
	Score:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Hash:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// ConsoleReporter prints a human-readable summary to stdout as each run
// finishes (spec.md §6 "Outputs to the reporter collaborator").
type ConsoleReporter struct {
	Theme   Theme
	Verbose bool
}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{Theme: DefaultTheme}
}

func (r *ConsoleReporter) Report(clones []core.Clone, stat core.Statistic) {
	t := r.Theme
	if len(clones) == 0 {
		fmt.Printf("\n%s\n", t.Summary.Render("No clones found."))
		r.printTotals(stat)
		return
	}

	fmt.Printf("\nFound %s clones across %s files:\n\n",
		t.Summary.Render(fmt.Sprintf("%d", len(clones))),
		t.Summary.Render(fmt.Sprintf("%d", stat.Total.Sources)))

	for _, c := range clones {
		fmt.Printf("%s %s %s\n",
			t.Dim.Render(fmt.Sprintf("[%d tokens]", c.Tokens)),
			t.Location.Render(c.DuplicationA.SourceID),
			t.LineNum.Render(fmt.Sprintf("%d:%d-%d:%d", c.DuplicationA.Start.Line, c.DuplicationA.Start.Column, c.DuplicationA.End.Line, c.DuplicationA.End.Column)))
		fmt.Printf("  %s %s\n",
			t.Dim.Render("↳"),
			t.Location.Render(fmt.Sprintf("%s:%d:%d-%d:%d", c.DuplicationB.SourceID, c.DuplicationB.Start.Line, c.DuplicationB.Start.Column, c.DuplicationB.End.Line, c.DuplicationB.End.Column)))
	}

	r.printHotspots(clones)
	r.printTotals(stat)
}

// printHotspots prints the files with the most duplicated lines, descending,
// in the teacher's PrintHotspots style (top 5 by summed clone-side line span).
func (r *ConsoleReporter) printHotspots(clones []core.Clone) {
	t := r.Theme
	fileDupLines := make(map[string]int)
	addSide := func(loc core.CloneLocation) {
		fileDupLines[loc.SourceID] += loc.End.Line - loc.Start.Line + 1
	}
	for _, c := range clones {
		addSide(c.DuplicationA)
		addSide(c.DuplicationB)
	}
	if len(fileDupLines) == 0 {
		return
	}

	type fileHotspot struct {
		sourceID string
		lines    int
	}
	hotspots := make([]fileHotspot, 0, len(fileDupLines))
	for f, lines := range fileDupLines {
		hotspots = append(hotspots, fileHotspot{f, lines})
	}
	sort.Slice(hotspots, func(i, j int) bool {
		return hotspots[i].lines > hotspots[j].lines
	})

	fmt.Printf("\n%s\n", t.Summary.Render("Duplication hotspots (lines):"))
	show := 5
	if len(hotspots) < show {
		show = len(hotspots)
	}
	for i := 0; i < show; i++ {
		fmt.Printf("  %s %s\n",
			t.LineNum.Render(fmt.Sprintf("%4d", hotspots[i].lines)),
			t.Location.Render(hotspots[i].sourceID))
	}
}

func (r *ConsoleReporter) printTotals(stat core.Statistic) {
	t := r.Theme
	fmt.Printf("\n%s %s/%s lines duplicated (%.1f%%), %s/%s tokens (%.1f%%)\n",
		t.Summary.Render("Total:"),
		t.LineNum.Render(fmt.Sprintf("%d", stat.Total.DuplicatedLines)), t.LineNum.Render(fmt.Sprintf("%d", stat.Total.Lines)),
		stat.Total.Percentage,
		t.LineNum.Render(fmt.Sprintf("%d", stat.Total.DuplicatedTokens)), t.LineNum.Render(fmt.Sprintf("%d", stat.Total.Tokens)),
		stat.Total.PercentageTokens)

	formats := make([]string, 0, len(stat.Formats))
	for f := range stat.Formats {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	for _, f := range formats {
		fs := stat.Formats[f]
		fmt.Printf("  %s %s files, %.1f%% duplicated\n", t.Dim.Render(f+":"), t.Dim.Render(fmt.Sprintf("%d", fs.Sources)), fs.Percentage)
	}
}

// jsonLocation / jsonClone / jsonReport are the wire shapes written by
// JSONReporter — a schema of our own invention (spec.md is silent on
// serialization), modeled on the teacher's JSONOutput/JSONPattern.
type jsonLocation struct {
	SourceID string `json:"sourceId"`
	StartLine int   `json:"startLine"`
	StartCol  int   `json:"startColumn"`
	EndLine   int   `json:"endLine"`
	EndCol    int   `json:"endColumn"`
	Fragment  string `json:"fragment,omitempty"`
}

type jsonClone struct {
	Format string       `json:"format"`
	Tokens int          `json:"tokens"`
	Hash   string       `json:"hash"`
	A      jsonLocation `json:"duplicationA"`
	B      jsonLocation `json:"duplicationB"`
}

type jsonReport struct {
	Clones    []jsonClone           `json:"clones"`
	Statistic core.Statistic        `json:"statistic"`
}

// JSONReporter writes the full clone set and statistic as JSON, in the
// teacher's WriteJSONResults style (spec.md §6 reporter contract: full
// clone list, not just a summary).
type JSONReporter struct {
	OutputPath string
}

func NewJSONReporter(outputPath string) *JSONReporter {
	return &JSONReporter{OutputPath: outputPath}
}

func (r *JSONReporter) Report(clones []core.Clone, stat core.Statistic) {
	out := jsonReport{Statistic: stat}
	for _, c := range clones {
		out.Clones = append(out.Clones, jsonClone{
			Format: c.Format,
			Tokens: c.Tokens,
			Hash:   strconv.FormatUint(c.Hash, 16),
			A:      toJSONLocation(c.DuplicationA),
			B:      toJSONLocation(c.DuplicationB),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "jscpd: marshaling JSON report: %v\n", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.OutputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "jscpd: creating report directory: %v\n", err)
		return
	}
	if err := os.WriteFile(r.OutputPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "jscpd: writing JSON report: %v\n", err)
		return
	}
	fmt.Printf("Results written to: %s\n", DefaultTheme.Location.Render(r.OutputPath))
}

func toJSONLocation(loc core.CloneLocation) jsonLocation {
	return jsonLocation{
		SourceID:  loc.SourceID,
		StartLine: loc.Start.Line,
		StartCol:  loc.Start.Column,
		EndLine:   loc.End.Line,
		EndCol:    loc.End.Column,
		Fragment:  loc.Fragment,
	}
}

// langFromExt maps a source's extension to a markdown fenced-code-block
// language hint, same table the teacher keeps in output.go.
var langFromExt = map[string]string{
	".go": "go", ".c": "c", ".h": "c", ".cpp": "cpp", ".hpp": "cpp", ".cc": "cpp",
	".java": "java", ".js": "javascript", ".jsx": "jsx", ".ts": "typescript", ".tsx": "tsx",
	".cs": "csharp", ".swift": "swift", ".kt": "kotlin", ".kts": "kotlin", ".scala": "scala",
	".rs": "rust", ".py": "python", ".dart": "dart",
}

// MarkdownReporter renders a detailed, syntax-highlighted report of every
// clone's two fragments to stdout via glamour, replacing the teacher's
// shellout to an external `glow` binary (renderWithGlow) with an in-process
// renderer — there is no reason this module should depend on a binary
// being present on $PATH when the library that binary wraps is importable
// directly.
type MarkdownReporter struct {
	Renderer *glamour.TermRenderer
}

func NewMarkdownReporter() (*MarkdownReporter, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, err
	}
	return &MarkdownReporter{Renderer: r}, nil
}

func (r *MarkdownReporter) Report(clones []core.Clone, stat core.Statistic) {
	if len(clones) == 0 {
		return
	}
	var sb strings.Builder
	for i, c := range clones {
		lang := langFromExt[filepath.Ext(c.DuplicationA.SourceID)]
		sb.WriteString(fmt.Sprintf("## Clone %d\n\n", i+1))
		sb.WriteString(fmt.Sprintf("**Format:** %s  **Tokens:** %d\n\n", c.Format, c.Tokens))
		sb.WriteString(fmt.Sprintf("### `%s:%d`\n\n", c.DuplicationA.SourceID, c.DuplicationA.Start.Line))
		sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", lang, c.DuplicationA.Fragment))
		sb.WriteString(fmt.Sprintf("### `%s:%d`\n\n", c.DuplicationB.SourceID, c.DuplicationB.Start.Line))
		sb.WriteString(fmt.Sprintf("```%s\n%s\n```\n\n", lang, c.DuplicationB.Fragment))
		sb.WriteString("---\n\n")
	}

	rendered, err := r.Renderer.Render(sb.String())
	if err != nil {
		fmt.Print(sb.String())
		return
	}
	fmt.Print(rendered)
}

// GitHubReporter emits GitHub Actions workflow-command annotations
// (spec.md's external-layer freedom; grounded on the teacher's
// PrintGitHubAnnotations), one per clone's B side.
type GitHubReporter struct {
	Level string // "warning" or "error"
}

func NewGitHubReporter(level string) *GitHubReporter {
	if level == "" {
		level = "warning"
	}
	return &GitHubReporter{Level: level}
}

func (r *GitHubReporter) Report(clones []core.Clone, _ core.Statistic) {
	for _, c := range clones {
		other := fmt.Sprintf("%s:%d", c.DuplicationA.SourceID, c.DuplicationA.Start.Line)
		msg := fmt.Sprintf("Duplicate code also at: %s", other)
		fmt.Printf("::%s file=%s,line=%d,endLine=%d,title=Duplicate (%d tokens)::%s\n",
			r.Level, c.DuplicationB.SourceID, c.DuplicationB.Start.Line, c.DuplicationB.End.Line, c.Tokens, msg)
	}
}
