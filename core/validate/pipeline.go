// Package validate implements spec.md §4.5, the ordered validator pipeline
// (C5): each validator may reject a raw clone outright or mutate it (e.g.
// attach its source fragment) before the next stage runs.
package validate

import "github.com/moinsen-dev/jscpd2025/core"

// Validator is one pipeline stage. It returns the (possibly mutated) clone
// and whether it survives; a false keep drops the clone from the run.
type Validator interface {
	Validate(c core.Clone) (core.Clone, bool)
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(core.Clone) (core.Clone, bool)

func (f ValidatorFunc) Validate(c core.Clone) (core.Clone, bool) { return f(c) }

// Pipeline runs an ordered list of validators, short-circuiting on the first
// rejection (spec.md: "any validator may reject it").
type Pipeline struct {
	stages []Validator
}

// NewPipeline builds the mandatory pipeline of spec.md §4.5 given run
// configuration and sources, in the order listed there: MinLines, MinTokens,
// MaxLines/MaxSize, fragment extraction. Overlap suppression is run
// separately (see Overlap in overlap.go) because it needs the full set of a
// run's clones, not just one at a time.
func NewPipeline(cfg core.Config, sources map[string]core.Source) *Pipeline {
	return &Pipeline{stages: []Validator{
		MinLines{Min: cfg.MinLines},
		MinTokens{Min: cfg.MinTokens},
		SizeLimits{MaxLines: cfg.MaxLines, MaxSize: cfg.MaxSize},
		Fragment{Sources: sources},
	}}
}

// Run passes c through every stage, returning the final clone and whether it
// survived the whole pipeline.
func (p *Pipeline) Run(c core.Clone) (core.Clone, bool) {
	for _, s := range p.stages {
		var ok bool
		c, ok = s.Validate(c)
		if !ok {
			return c, false
		}
	}
	return c, true
}
