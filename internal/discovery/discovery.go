// Package discovery walks a file tree and builds the core.Source records
// the clone-detection engine consumes (spec.md §6 "Inputs from the
// file-discovery collaborator"), shared by the CLI and the MCP server so
// neither reimplements the other's extension table or exclude-glob logic.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/moinsen-dev/jscpd2025/core"
)

// DefaultFormatExts is the extension-to-grammar-id routing table (spec.md
// §6 "formatsExts"), matching the ids registered in core/lang.
var DefaultFormatExts = map[string][]string{
	"go":         {".go"},
	"python":     {".py"},
	"javascript": {".js", ".jsx", ".mjs", ".ts", ".tsx", ".cjs"},
	"c-style":    {".c", ".h", ".cc", ".cpp", ".hpp", ".cs", ".java", ".kt", ".kts", ".rs", ".scala", ".swift", ".dart"},
}

// skipDirs mirrors the teacher's implicit assumption that VCS and
// dependency directories are never scanned.
var skipDirs = map[string]bool{
	".git": true, "node_modules": true, "vendor": true, ".hg": true, ".svn": true,
}

func formatFor(path string, exts map[string][]string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for format, es := range exts {
		for _, e := range es {
			if e == ext {
				return format, true
			}
		}
	}
	return "", false
}

// Discover walks roots, reading every file whose extension maps to a
// registered format and that no exclude glob matches.
func Discover(roots []string, exts map[string][]string, excludes []string, maxSize int) ([]core.Source, error) {
	var sources []core.Source

	for _, root := range roots {
		info, err := os.Stat(root)
		if err == nil && !info.IsDir() {
			if format, ok := formatFor(root, exts); ok && !MatchesAny(root, excludes) {
				if src, ok := readSource(root, format, maxSize); ok {
					sources = append(sources, src)
				}
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if MatchesAny(path, excludes) {
				return nil
			}
			format, ok := formatFor(path, exts)
			if !ok {
				return nil
			}
			if src, ok := readSource(path, format, maxSize); ok {
				sources = append(sources, src)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func readSource(path, format string, maxSize int) (core.Source, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return core.Source{}, false
	}
	if maxSize > 0 && info.Size() > int64(maxSize) {
		return core.Source{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Source{}, false
	}
	content := string(data)
	return core.Source{
		SourceID: path,
		Format:   format,
		Content:  content,
		Lines:    strings.Count(content, "\n") + 1,
	}, true
}

// MatchesAny reports whether path (by basename or full path) matches any of
// the given glob patterns.
func MatchesAny(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
		if ok, _ := filepath.Match(p, path); ok {
			return true
		}
	}
	return false
}
