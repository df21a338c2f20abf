package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
)

func TestFragment_SlicesContentByRange(t *testing.T) {
	sources := map[string]core.Source{
		"a.go": {SourceID: "a.go", Content: "package main\n\nfunc main() {}\n"},
	}
	c := core.Clone{DuplicationA: loc("a.go", 3, 3, 14, 28)}
	v := Fragment{Sources: sources}

	got, ok := v.Validate(c)
	require.True(t, ok)
	assert.Equal(t, "func main() {}", got.DuplicationA.Fragment)
}

func TestFragment_MissingSourceLeavesFragmentEmpty(t *testing.T) {
	v := Fragment{Sources: map[string]core.Source{}}
	c := core.Clone{DuplicationA: loc("missing.go", 1, 1, 0, 10)}

	got, ok := v.Validate(c)
	require.True(t, ok)
	assert.Empty(t, got.DuplicationA.Fragment)
}

func TestFragment_OutOfBoundsRangeLeavesFragmentEmpty(t *testing.T) {
	sources := map[string]core.Source{
		"a.go": {SourceID: "a.go", Content: "short"},
	}
	v := Fragment{Sources: sources}
	c := core.Clone{DuplicationA: loc("a.go", 1, 1, 0, 1000)}

	got, ok := v.Validate(c)
	require.True(t, ok)
	assert.Empty(t, got.DuplicationA.Fragment)
}

func TestFragment_NeverRejects(t *testing.T) {
	v := Fragment{Sources: map[string]core.Source{}}
	_, ok := v.Validate(core.Clone{})
	assert.True(t, ok)
}
