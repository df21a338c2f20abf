package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moinsen-dev/jscpd2025/core"
)

func loc(sourceID string, startLine, endLine, start, end int) core.CloneLocation {
	return core.CloneLocation{
		SourceID: sourceID,
		Start:    core.Position{Line: startLine, Position: start},
		End:      core.Position{Line: endLine, Position: end},
		Range:    core.Range{Start: start, End: end},
	}
}

func TestMinLines_RejectsEitherSideShort(t *testing.T) {
	c := core.Clone{
		DuplicationA: loc("a.go", 1, 5, 0, 50),
		DuplicationB: loc("b.go", 1, 2, 0, 50),
	}
	_, ok := MinLines{Min: 5}.Validate(c)
	assert.False(t, ok)
}

func TestMinLines_AcceptsExactBoundary(t *testing.T) {
	c := core.Clone{
		DuplicationA: loc("a.go", 1, 5, 0, 50),
		DuplicationB: loc("b.go", 10, 14, 0, 50),
	}
	_, ok := MinLines{Min: 5}.Validate(c)
	assert.True(t, ok)
}

func TestMinTokens_RejectsBelowMinimum(t *testing.T) {
	c := core.Clone{Tokens: 4}
	_, ok := MinTokens{Min: 5}.Validate(c)
	assert.False(t, ok)
}

func TestMinTokens_AcceptsExactMinimum(t *testing.T) {
	c := core.Clone{Tokens: 5}
	_, ok := MinTokens{Min: 5}.Validate(c)
	assert.True(t, ok)
}

func TestSizeLimits_ZeroMaxLinesMeansUnlimited(t *testing.T) {
	c := core.Clone{
		DuplicationA: loc("a.go", 1, 1000, 0, 50),
		DuplicationB: loc("b.go", 1, 1000, 0, 50),
	}
	_, ok := SizeLimits{MaxLines: 0}.Validate(c)
	assert.True(t, ok)
}

func TestSizeLimits_RejectsOverMaxLines(t *testing.T) {
	c := core.Clone{
		DuplicationA: loc("a.go", 1, 500, 0, 50),
		DuplicationB: loc("b.go", 1, 5, 0, 50),
	}
	_, ok := SizeLimits{MaxLines: 400}.Validate(c)
	assert.False(t, ok)
}

func TestSizeLimits_RejectsOverMaxSize(t *testing.T) {
	c := core.Clone{
		DuplicationA: loc("a.go", 1, 5, 0, 10000),
		DuplicationB: loc("b.go", 1, 5, 0, 10),
	}
	_, ok := SizeLimits{MaxSize: 1000}.Validate(c)
	assert.False(t, ok)
}
