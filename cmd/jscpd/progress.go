package main

import (
	"github.com/schollz/progressbar/v3"

	"github.com/moinsen-dev/jscpd2025/core"
)

// progressSubscriber drives a terminal progress bar off the detector's own
// lifecycle events (spec.md §6 "Event channel") rather than wrapping the
// driver loop externally, so progress always reflects files actually
// finished processing (END/SKIPPED_SOURCE), not just files handed to the
// driver.
type progressSubscriber struct {
	bar *progressbar.ProgressBar
}

// newProgressSubscriber builds a subscriber that advances a progress bar of
// total steps, one per file. Pass total <= 0 to get a bar in spinner mode
// (progressbar.Default handles that internally).
func newProgressSubscriber(total int) *progressSubscriber {
	return &progressSubscriber{bar: progressbar.Default(int64(total), "scanning")}
}

func (p *progressSubscriber) Handlers() map[core.EventName]func(core.Event) {
	advance := func(core.Event) { _ = p.bar.Add(1) }
	return map[core.EventName]func(core.Event){
		core.EventEnd:           advance,
		core.EventSkippedSource: advance,
	}
}
