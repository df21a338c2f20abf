// Package engine wires core/detect and core/scan into a single Scan
// entry point, shared by the CLI (cmd/jscpd) and the MCP server (mcp) so
// both front ends build a coordinator and driver the same way.
package engine

import (
	"context"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/detect"
	"github.com/moinsen-dev/jscpd2025/core/scan"
	"github.com/moinsen-dev/jscpd2025/core/storage"
)

// Options bundles the per-run settings a caller needs beyond core.Config
// itself: which reporters to drive and how much tokenize-stage concurrency
// to use.
type Options struct {
	Config      core.Config
	Sources     []core.Source
	Reporters   []scan.Reporter
	Subscribers []core.Subscriber
	Parallelism int
}

// Scan runs discovery's sources through the full detector pipeline and
// returns every accepted clone plus the run's aggregate statistic. It owns
// the store's lifetime: a fresh sharded in-memory store per call, closed by
// the driver once the run completes.
func Scan(ctx context.Context, opts Options) ([]core.Clone, core.Statistic, error) {
	sourceMap := make(map[string]core.Source, len(opts.Sources))
	for _, s := range opts.Sources {
		sourceMap[s.SourceID] = s
	}

	coordinator := &detect.Coordinator{
		Config:      opts.Config,
		Store:       storage.NewSharded(),
		Subscribers: opts.Subscribers,
		Sources:     sourceMap,
	}

	driver := &scan.Driver{
		Coordinator: coordinator,
		Reporters:   opts.Reporters,
		Parallelism: opts.Parallelism,
	}

	return driver.Run(ctx, opts.Sources)
}
