package validate

import "github.com/moinsen-dev/jscpd2025/core"

// MinLines rejects clones whose line span falls short of Min on either side
// (spec.md §4.5 "MinLines").
type MinLines struct{ Min int }

func (v MinLines) Validate(c core.Clone) (core.Clone, bool) {
	if lineSpan(c.DuplicationA) < v.Min || lineSpan(c.DuplicationB) < v.Min {
		return c, false
	}
	return c, true
}

func lineSpan(loc core.CloneLocation) int {
	return loc.End.Line - loc.Start.Line + 1
}

// MinTokens rejects clones covering fewer than Min significant tokens.
// Matcher output already guarantees this by construction (a clone can only
// open from a frame of exactly minTokens and extension only grows it), but
// spec.md §4.5 requires it be re-checked for adjusted minima (e.g. a run
// reusing clones produced under a different configuration).
type MinTokens struct{ Min int }

func (v MinTokens) Validate(c core.Clone) (core.Clone, bool) {
	if c.Tokens < v.Min {
		return c, false
	}
	return c, true
}

// SizeLimits rejects clones exceeding MaxLines lines or MaxSize bytes on
// either side. MaxSize == 0 means unlimited (spec.md §6 default "none").
type SizeLimits struct {
	MaxLines int
	MaxSize  int
}

func (v SizeLimits) Validate(c core.Clone) (core.Clone, bool) {
	if v.MaxLines > 0 && (lineSpan(c.DuplicationA) > v.MaxLines || lineSpan(c.DuplicationB) > v.MaxLines) {
		return c, false
	}
	if v.MaxSize > 0 && (c.DuplicationA.Range.Len() > v.MaxSize || c.DuplicationB.Range.Len() > v.MaxSize) {
		return c, false
	}
	return c, true
}
