// Package framebuild implements spec.md §4.2, the token-map builder (C2):
// turning a tokenized source into the sequence of fixed-width MapFrames the
// matcher (core/match) slides the store against.
package framebuild

import (
	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/hashing"
)

// significant is the subset of a tokenized file that survives mode
// filtering, paired with the mask key it contributed.
type significant struct {
	token core.Token
	key   string
}

// BuildFrames drops insignificant tokens, then slides a window of exactly
// minTokens significant tokens across what remains, producing one MapFrame
// per window position. A file with fewer than minTokens significant tokens
// yields no frames at all.
func BuildFrames(sourceID string, tokens []core.Token, mode core.Mode, ignoreCase bool, minTokens int) []core.MapFrame {
	if minTokens < 1 {
		minTokens = 1
	}

	kept := make([]significant, 0, len(tokens))
	for _, t := range tokens {
		key := core.MaskKey(t, mode, ignoreCase)
		if key == "" {
			continue
		}
		kept = append(kept, significant{token: t, key: key})
	}
	if len(kept) < minTokens {
		return nil
	}

	frames := make([]core.MapFrame, 0, len(kept)-minTokens+1)
	win := hashing.NewWindow(minTokens)

	// Prime the window with the first minTokens-1 keys so that, from here on,
	// each loop iteration both completes one window and emits its frame.
	for i := 0; i < minTokens-1; i++ {
		win.Push(kept[i].key)
	}

	for end := minTokens - 1; end < len(kept); end++ {
		win.Push(kept[end].key)
		start := end - minTokens + 1

		first, last := kept[start].token, kept[end].token
		frames = append(frames, core.MapFrame{
			ID:       win.Value(),
			SourceID: sourceID,
			Start: core.Position{
				Line:     first.Line,
				Column:   first.Column,
				Position: first.Range.Start,
			},
			End: core.Position{
				Line:     last.Line,
				Column:   last.Column + last.Range.Len(),
				Position: last.Range.End,
			},
			Index:      len(frames),
			TokenStart: start,
			TokenEnd:   end + 1,
		})
	}

	return frames
}
