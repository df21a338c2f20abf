package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
)

func TestPipeline_AcceptsCloneThatSurvivesEveryStage(t *testing.T) {
	sources := map[string]core.Source{
		"a.go": {SourceID: "a.go", Content: "0123456789"},
		"b.go": {SourceID: "b.go", Content: "0123456789"},
	}
	cfg := core.Config{MinLines: 2, MinTokens: 3, MaxLines: 100, MaxSize: 0}
	p := NewPipeline(cfg, sources)

	c := core.Clone{
		Tokens:       3,
		DuplicationA: loc("a.go", 1, 3, 0, 5),
		DuplicationB: loc("b.go", 1, 3, 0, 5),
	}

	got, ok := p.Run(c)
	require.True(t, ok)
	assert.Equal(t, "01234", got.DuplicationA.Fragment)
	assert.Equal(t, "01234", got.DuplicationB.Fragment)
}

func TestPipeline_ShortCircuitsOnFirstRejection(t *testing.T) {
	cfg := core.Config{MinLines: 10, MinTokens: 3}
	p := NewPipeline(cfg, map[string]core.Source{})

	c := core.Clone{
		Tokens:       1, // would also fail MinTokens, but MinLines runs first
		DuplicationA: loc("a.go", 1, 2, 0, 5),
		DuplicationB: loc("b.go", 1, 2, 0, 5),
	}

	got, ok := p.Run(c)
	assert.False(t, ok)
	assert.Empty(t, got.DuplicationA.Fragment, "Fragment stage never runs once MinLines rejects")
}

func TestPipeline_RejectsOnMaxLinesAfterPassingMinLines(t *testing.T) {
	cfg := core.Config{MinLines: 2, MinTokens: 1, MaxLines: 5}
	p := NewPipeline(cfg, map[string]core.Source{})

	c := core.Clone{
		Tokens:       1,
		DuplicationA: loc("a.go", 1, 10, 0, 5),
		DuplicationB: loc("b.go", 1, 10, 0, 5),
	}

	_, ok := p.Run(c)
	assert.False(t, ok)
}
