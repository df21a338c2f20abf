package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscover_WalksDirectoryAndRoutesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "script.py", "x = 1\n")
	writeFile(t, dir, "notes.txt", "irrelevant\n")

	sources, err := Discover([]string{dir}, DefaultFormatExts, nil, 0)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	byFormat := map[string]int{}
	for _, s := range sources {
		byFormat[s.Format]++
	}
	assert.Equal(t, 1, byFormat["go"])
	assert.Equal(t, 1, byFormat["python"])
}

func TestDiscover_SkipsVendorAndGitDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go", "package main\n")
	writeFile(t, dir, "vendor/dep.go", "package dep\n")
	writeFile(t, dir, ".git/objects/pack.go", "package git\n")

	sources, err := Discover([]string{dir}, DefaultFormatExts, nil, 0)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, filepath.Join(dir, "keep.go"), sources[0].SourceID)
}

func TestDiscover_ExcludeGlobDropsMatchingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.go", "package main\n")
	writeFile(t, dir, "keep_test.go", "package main\n")

	sources, err := Discover([]string{dir}, DefaultFormatExts, []string{"*_test.go"}, 0)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, filepath.Join(dir, "keep.go"), sources[0].SourceID)
}

func TestDiscover_MaxSizeDropsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.go", "package main\n// 0123456789\n")

	sources, err := Discover([]string{dir}, DefaultFormatExts, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestDiscover_SingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n")

	sources, err := Discover([]string{path}, DefaultFormatExts, nil, 0)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, path, sources[0].SourceID)
}

func TestDiscover_LinesCountsNewlinesPlusOne(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "one\ntwo\nthree\n")

	sources, err := Discover([]string{dir}, DefaultFormatExts, nil, 0)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, 4, sources[0].Lines)
}

func TestMatchesAny_MatchesBasenameAndFullPath(t *testing.T) {
	assert.True(t, MatchesAny("/a/b/c_test.go", []string{"*_test.go"}))
	assert.True(t, MatchesAny("/a/b/c.go", []string{"/a/b/c.go"}))
	assert.False(t, MatchesAny("/a/b/c.go", []string{"*_test.go"}))
}

func TestMatchesAny_EmptyPatternIgnored(t *testing.T) {
	assert.False(t, MatchesAny("/a/b/c.go", []string{"", "  "}))
}
