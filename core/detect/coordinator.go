// Package detect implements spec.md §4.6, the detector coordinator (C6):
// driving a single file through tokenizing (core/lang), frame building
// (core/framebuild), matching (core/match), and validation (core/validate),
// emitting lifecycle events at each defined point.
package detect

import (
	"context"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/framebuild"
	"github.com/moinsen-dev/jscpd2025/core/lang"
	"github.com/moinsen-dev/jscpd2025/core/match"
	"github.com/moinsen-dev/jscpd2025/core/validate"
)

// History is the shared, run-lifetime per-file state the matcher needs to
// extend matches against any previously processed file (match.FileIndex),
// keyed by SourceID. The coordinator populates it as it goes; the driver
// (core/scan) owns the map's lifetime.
type History map[string]match.FileIndex

// Coordinator drives C1-C5 for one file at a time and fans out lifecycle
// events to its subscribers in registration order (spec.md §4.6).
type Coordinator struct {
	Config      core.Config
	Store       core.Store
	Subscribers []core.Subscriber
	Sources     map[string]core.Source // all sources in the run, for Fragment extraction
}

// Result is what a single Process call produced, for the driver to fold
// into its running Statistic.
type Result struct {
	SourceID string
	Clones   []core.Clone
	Skipped  bool
}

// Prepared is the outcome of tokenizing and frame-building one source: pure
// CPU work with no store access (spec.md §5 "Suspension points" — only
// store.get/set/close may suspend). The driver may run Prepare for many
// files concurrently; Process, which touches the store, must still run in
// file-supply order.
type Prepared struct {
	Source  core.Source
	Tokens  []core.Token
	FileIdx match.FileIndex
	Err     error // UnknownFormat/TokenizerError; Process turns this into SKIPPED_SOURCE
}

// Prepare tokenizes src and builds its frames, independent of any other
// file or the store.
func (co *Coordinator) Prepare(src core.Source) Prepared {
	tokens, err := lang.Tokenize(src.Content, src.Format)
	if err != nil {
		return Prepared{Source: src, Err: err}
	}
	maskKeys := significantKeys(tokens, co.Config.Mode, co.Config.IgnoreCase)
	frames := framebuild.BuildFrames(src.SourceID, tokens, co.Config.Mode, co.Config.IgnoreCase, co.Config.MinTokens)
	return Prepared{
		Source:  src,
		Tokens:  tokens,
		FileIdx: match.FileIndex{SourceID: src.SourceID, Frames: frames, MaskKeys: maskKeys},
	}
}

// Process runs one already-prepared source through matching and validation,
// emitting lifecycle events as it goes. A tokenizer failure recorded in
// p.Err yields a SKIPPED_SOURCE event and a non-error, Skipped result, per
// spec.md §4.6 failure semantics. A store failure aborts this file with
// STORE_ERROR and returns the error, leaving it to the driver to decide
// whether to continue with the next file.
func (co *Coordinator) Process(ctx context.Context, p Prepared, history History) (Result, error) {
	src := p.Source
	core.Dispatch(co.Subscribers, core.Event{
		Name:    core.EventMatchSource,
		Payload: core.MatchSourcePayload{SourceID: src.SourceID, Format: src.Format},
	})

	if p.Err != nil {
		core.Dispatch(co.Subscribers, core.Event{
			Name:    core.EventSkippedSource,
			Payload: core.SkippedSourcePayload{SourceID: src.SourceID, Reason: p.Err.Error()},
		})
		return Result{SourceID: src.SourceID, Skipped: true}, nil
	}

	tokens, fileIdx := p.Tokens, p.FileIdx
	history[src.SourceID] = fileIdx

	core.Dispatch(co.Subscribers, core.Event{
		Name:    core.EventStartDetection,
		Payload: core.StartDetectionPayload{SourceID: src.SourceID, Format: src.Format, TokensCount: len(fileIdx.MaskKeys)},
	})

	raw, err := match.Detect(ctx, fileIdx, co.Store, history)
	if err != nil {
		core.Dispatch(co.Subscribers, core.Event{
			Name:    core.EventStoreError,
			Payload: core.StoreErrorPayload{SourceID: src.SourceID, Err: err},
		})
		return Result{SourceID: src.SourceID}, err
	}

	pipeline := validate.NewPipeline(co.Config, co.Sources)

	clones := make([]core.Clone, 0, len(raw))
	for _, r := range raw {
		c, ok := materialize(r, history, src.Format, co.Config.MinTokens)
		if !ok {
			continue
		}
		c, ok = pipeline.Run(c)
		if !ok {
			continue
		}
		clones = append(clones, c)
	}
	// Overlap suppression needs every clone this file produced in hand at
	// once, so it runs as a second pass rather than a pipeline stage
	// (spec.md §4.5 "Overlap suppression" is scoped per file-pair, and a
	// single Process call may surface several clones against the same
	// earlier file).
	clones = validate.NewOverlap().Apply(clones)

	for _, c := range clones {
		core.Dispatch(co.Subscribers, core.Event{
			Name:    core.EventCloneFound,
			Payload: core.CloneFoundPayload{Clone: c},
		})
	}

	fstat := formatStatistic(src, tokens, clones)
	core.Dispatch(co.Subscribers, core.Event{
		Name:    core.EventEnd,
		Payload: core.EndPayload{SourceID: src.SourceID, Statistic: fstat},
	})

	return Result{SourceID: src.SourceID, Clones: clones}, nil
}

// significantKeys computes the mask key of every significant token, in
// order, aligned to the TokenStart/TokenEnd indices framebuild assigns.
func significantKeys(tokens []core.Token, mode core.Mode, ignoreCase bool) []string {
	keys := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if k := core.MaskKey(t, mode, ignoreCase); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// materialize turns a match.RawClone (frame-index spans into history) into
// a core.Clone with concrete positions and byte ranges, per spec.md §3.
func materialize(r match.RawClone, history History, format string, minTokens int) (core.Clone, bool) {
	a, ok := history[r.AFile]
	if !ok || r.AEnd >= len(a.Frames) {
		return core.Clone{}, false
	}
	b, ok := history[r.BFile]
	if !ok || r.BEnd >= len(b.Frames) {
		return core.Clone{}, false
	}

	aFirst, aLast := a.Frames[r.AStart], a.Frames[r.AEnd]
	bFirst, bLast := b.Frames[r.BStart], b.Frames[r.BEnd]

	return core.Clone{
		Format: format,
		Hash:   aFirst.ID,
		DuplicationA: core.CloneLocation{
			SourceID: r.AFile,
			Start:    aFirst.Start,
			End:      aLast.End,
			Range:    core.Range{Start: aFirst.Start.Position, End: aLast.End.Position},
		},
		DuplicationB: core.CloneLocation{
			SourceID: r.BFile,
			Start:    bFirst.Start,
			End:      bLast.End,
			Range:    core.Range{Start: bFirst.Start.Position, End: bLast.End.Position},
		},
		Tokens: (r.AEnd - r.AStart) + minTokens,
	}, true
}

// formatStatistic summarizes one processed file for its END event; the
// driver (core/scan) is responsible for folding these into the run-wide
// core.Statistic.
func formatStatistic(src core.Source, tokens []core.Token, clones []core.Clone) core.FormatStatistic {
	fs := core.FormatStatistic{Sources: 1, Lines: src.Lines, Tokens: len(tokens), Clones: len(clones)}
	for _, c := range clones {
		// The B side is always this file: a clone only surfaces during
		// Process(src) because src's own frame (the F in spec.md §4.4)
		// opened or extended the match, so DuplicationB is always rooted
		// in src — including self-clones, where A and B coincide.
		if c.DuplicationB.SourceID == src.SourceID {
			fs.DuplicatedLines += c.DuplicationB.End.Line - c.DuplicationB.Start.Line + 1
			fs.DuplicatedTokens += c.Tokens
		}
	}
	if fs.Lines > 0 {
		fs.Percentage = 100 * float64(fs.DuplicatedLines) / float64(fs.Lines)
	}
	if fs.Tokens > 0 {
		fs.PercentageTokens = 100 * float64(fs.DuplicatedTokens) / float64(fs.Tokens)
	}
	return fs
}
