// Package scan implements spec.md §4.7, the multi-file driver (C7):
// orchestrating the detector coordinator (core/detect) across a whole file
// set, accumulating statistics, and fanning results out to reporters.
package scan

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/detect"
)

// Reporter is an external collaborator that wants the finished run's clones
// and statistic (spec.md §6 "Outputs to the reporter collaborator"). A
// reporter whose work continues past the run — writing a file, flushing a
// remote sink — implements WaitForCompletion; the driver awaits every such
// hook before closing the store.
type Reporter interface {
	Report(clones []core.Clone, stat core.Statistic)
}

// AsyncReporter is the optional hook spec.md §4.7 calls out: "awaits any
// reporter that declares asynchronous completion".
type AsyncReporter interface {
	Reporter
	WaitForCompletion(ctx context.Context) error
}

// Driver runs C6 over a file set. Parallelism bounds how many files'
// tokenize+frame-build stage (core/detect.Coordinator.Prepare) run
// concurrently; it has no effect on matching, which is always sequential in
// file-supply order to honor spec.md §5's ordering guarantees. Zero or
// negative Parallelism means "no concurrency" (one at a time).
type Driver struct {
	Coordinator *detect.Coordinator
	Reporters   []Reporter
	Parallelism int
}

// Run processes sources in order, returning every accepted clone across the
// whole set and the final Statistic. Cancellation is checked between files;
// on cancellation the current file is allowed to finish (no partial
// clones), reporters are still notified, and the store is still closed
// (spec.md §5 "Cancellation").
func (d *Driver) Run(ctx context.Context, sources []core.Source) ([]core.Clone, core.Statistic, error) {
	prepared := d.prepareAll(sources)

	history := make(detect.History, len(sources))
	stat := core.NewStatistic()
	var allClones []core.Clone
	var runErr error

	for _, p := range prepared {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		result, err := d.Coordinator.Process(ctx, p, history)
		if err != nil {
			runErr = err
			break
		}

		if result.Skipped {
			continue
		}

		stat.AddSource(p.Source.Format, p.Source.Lines, len(p.Tokens))
		for _, c := range result.Clones {
			stat.AddClone(p.Source.Format,
				c.DuplicationA.End.Line-c.DuplicationA.Start.Line+1, c.Tokens,
				c.DuplicationB.End.Line-c.DuplicationB.Start.Line+1, c.Tokens)
		}
		allClones = append(allClones, result.Clones...)
	}

	for _, r := range d.Reporters {
		r.Report(allClones, *stat)
	}
	for _, r := range d.Reporters {
		if ar, ok := r.(AsyncReporter); ok {
			if err := ar.WaitForCompletion(ctx); err != nil && runErr == nil {
				runErr = err
			}
		}
	}

	if err := d.Coordinator.Store.Close(ctx); err != nil && runErr == nil {
		runErr = err
	}

	return allClones, *stat, runErr
}

// prepareAll tokenizes and frame-builds every source, optionally in
// parallel, but always returns results in the original supply order — the
// match stage depends on that order for its ordering guarantees.
func (d *Driver) prepareAll(sources []core.Source) []detect.Prepared {
	out := make([]detect.Prepared, len(sources))
	if d.Parallelism <= 1 {
		for i, src := range sources {
			out[i] = d.Coordinator.Prepare(src)
		}
		return out
	}

	p := pool.New().WithMaxGoroutines(d.Parallelism)
	for i, src := range sources {
		i, src := i, src
		p.Go(func() {
			out[i] = d.Coordinator.Prepare(src)
		})
	}
	p.Wait()
	return out
}
