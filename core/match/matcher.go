// Package match implements spec.md §4.4, the Rabin-Karp matcher (C4): a
// single forward pass over one file's frames that opens, extends, and closes
// candidate clones against a shared store.
package match

import (
	"context"
	"slices"

	"github.com/moinsen-dev/jscpd2025/core"
)

// FileIndex is everything the matcher needs to re-examine a file's frame
// sequence after the fact: its frames in source order and the mask key of
// every significant token they were built from (aligned to
// MapFrame.TokenStart/TokenEnd). The store only ever remembers the single
// latest StoreRecord per frame id (spec.md §4.3); FileIndex is the
// additional per-file state the coordinator/driver (core/detect,
// core/scan) keeps around for the lifetime of a run so that extending a
// match against a *prior* file can verify tail tokens the same way
// extending within the current file does. Design Notes (spec.md §9)
// explicitly allows implementations to retain more than the bare minimum
// the store requires, provided last-writer-wins semantics still govern
// candidate discovery — which they do here, since FileIndex is read-only
// history, never consulted to decide whether a candidate opens.
type FileIndex struct {
	SourceID string
	Frames   []core.MapFrame
	MaskKeys []string
}

// RawClone is a clone before validation (core/validate): frame-index spans
// on both sides rather than byte ranges, since only the caller holds the
// FileIndex needed to turn a frame span back into line/column/byte
// positions and source fragments.
type RawClone struct {
	AFile  string
	BFile  string
	AStart int // inclusive frame index, A side
	AEnd   int // inclusive frame index, A side
	BStart int // inclusive frame index, B side
	BEnd   int // inclusive frame index, B side
}

// Detect runs spec.md §4.4 over one file's frames in order, reading and
// writing store as it goes, and consulting history for any file a candidate
// match opens against. The caller must register history[file.SourceID] =
// file before calling Detect (not after): a self-clone (spec.md scenario 3)
// opens against a frame the store already holds from earlier in this same
// file, and extend() looks that prior side up through history exactly like
// it would for any other file. Detect never mutates history itself.
func Detect(ctx context.Context, file FileIndex, store core.Store, history map[string]FileIndex) ([]RawClone, error) {
	var clones []RawClone

	i := 0
	for i < len(file.Frames) {
		f := file.Frames[i]

		prior, ok, err := store.Get(ctx, f.ID)
		if err != nil {
			return clones, core.StoreUnavailableError("match.Get", err)
		}

		if !ok || (prior.SourceID == file.SourceID && prior.Index == f.Index) {
			if err := store.Set(ctx, f.ID, toRecord(f)); err != nil {
				return clones, core.StoreUnavailableError("match.Set", err)
			}
			i++
			continue
		}

		// Equal ids only make a candidate: the two windows' mask keys must
		// agree before the match is admitted (spec.md §4.2 collision policy).
		// A collision, or a prior file with no history, counts as no match.
		priorIdx, havePrior := history[prior.SourceID]
		verified := havePrior && prior.Index < len(priorIdx.Frames)
		if verified {
			pf := priorIdx.Frames[prior.Index]
			verified = pf.TokenEnd <= len(priorIdx.MaskKeys) && f.TokenEnd <= len(file.MaskKeys) &&
				slices.Equal(priorIdx.MaskKeys[pf.TokenStart:pf.TokenEnd], file.MaskKeys[f.TokenStart:f.TokenEnd])
		}
		if !verified {
			if err := store.Set(ctx, f.ID, toRecord(f)); err != nil {
				return clones, core.StoreUnavailableError("match.Set", err)
			}
			i++
			continue
		}
		k := extend(priorIdx, prior.Index, file, f.Index)

		aStart, aEnd := prior.Index, prior.Index+k
		bStart, bEnd := f.Index, f.Index+k
		sameFile := prior.SourceID == file.SourceID

		// Within one file the B side must start after the A side's last
		// token, so the two sides never share source bytes.
		if !sameFile || f.TokenStart >= priorIdx.Frames[aEnd].TokenEnd {
			clones = append(clones, RawClone{
				AFile:  prior.SourceID,
				BFile:  file.SourceID,
				AStart: aStart,
				AEnd:   aEnd,
				BStart: bStart,
				BEnd:   bEnd,
			})
		}

		if err := store.Set(ctx, f.ID, toRecord(f)); err != nil {
			return clones, core.StoreUnavailableError("match.Set", err)
		}

		// Jump past the matched region on the current side (spec.md §4.4
		// step 6); frames[j].Index == j always holds since framebuild
		// assigns Index sequentially, so the new frame index is also the
		// next slice position to resume scanning from.
		i = f.Index + k + 1
	}

	return clones, nil
}

// extend grows the match rooted at (prior.Frames[priorStart], file.Frames[bStart])
// one frame at a time: both sides must still have a frame, the new frames
// must share an id, and the new tail token's mask key must agree (spec.md
// §4.4 step 4). It returns k, the number of successful extensions.
func extend(prior FileIndex, priorStart int, file FileIndex, bStart int) int {
	k := 0
	for {
		pNext := priorStart + k + 1
		bNext := bStart + k + 1
		if pNext >= len(prior.Frames) || bNext >= len(file.Frames) {
			break
		}

		pf := prior.Frames[pNext]
		bf := file.Frames[bNext]
		if pf.ID != bf.ID {
			break
		}
		if !tailMatches(prior.MaskKeys, pf, file.MaskKeys, bf) {
			break
		}
		k++
	}
	return k
}

// tailMatches verifies the single new significant token each side's window
// gained at this extension step still carries an equal mask key — the
// mandatory collision check of spec.md §4.4 step 4(c), kept to O(1) rather
// than re-comparing the whole window.
func tailMatches(aKeys []string, a core.MapFrame, bKeys []string, b core.MapFrame) bool {
	ai, bi := a.TokenEnd-1, b.TokenEnd-1
	if ai < 0 || bi < 0 || ai >= len(aKeys) || bi >= len(bKeys) {
		return false
	}
	return aKeys[ai] == bKeys[bi]
}

func toRecord(f core.MapFrame) core.StoreRecord {
	return core.StoreRecord{
		SourceID: f.SourceID,
		Start:    f.Start,
		End:      f.End,
		Index:    f.Index,
	}
}
