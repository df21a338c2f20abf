package validate

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/moinsen-dev/jscpd2025/core"
)

// pairCoverage tracks, per source, which bytes have already been claimed by
// an accepted clone belonging to one specific file-pair. Roaring bitmaps
// keep this cheap even for large files, since accepted clones tend to cover
// long contiguous runs that compress well.
type pairCoverage struct {
	a *roaring.Bitmap
	b *roaring.Bitmap
}

// Overlap discards any clone whose both sides are fully contained within an
// already-accepted clone of the same file-pair (spec.md §4.5 "Overlap
// suppression"). Unlike the other validators it keeps state across the
// clones it has been given, so it is applied as a separate pass after the
// per-clone pipeline rather than folded into Pipeline.
type Overlap struct {
	seen map[string]*pairCoverage
}

// NewOverlap returns a fresh, empty suppressor. The detector coordinator
// builds one per processed file.
func NewOverlap() *Overlap {
	return &Overlap{seen: make(map[string]*pairCoverage)}
}

// Apply filters clones in order, keeping each unless it is fully covered by
// an earlier accepted clone of the same pair, then marks its ranges as
// covered for subsequent clones of that pair.
func (o *Overlap) Apply(clones []core.Clone) []core.Clone {
	kept := make([]core.Clone, 0, len(clones))
	for _, c := range clones {
		key := pairKey(c.DuplicationA.SourceID, c.DuplicationB.SourceID)
		cov := o.seen[key]
		if cov == nil {
			cov = &pairCoverage{a: roaring.New(), b: roaring.New()}
			o.seen[key] = cov
		}

		// cov.a holds the lexically smaller SourceID of the pair and cov.b the
		// other, so a clone with its sides swapped is checked against the
		// coverage of the same files.
		covA, covB := cov.a, cov.b
		if c.DuplicationA.SourceID > c.DuplicationB.SourceID {
			covA, covB = cov.b, cov.a
		}

		if fullyCovered(covA, c.DuplicationA.Range) && fullyCovered(covB, c.DuplicationB.Range) {
			continue
		}

		markCovered(covA, c.DuplicationA.Range)
		markCovered(covB, c.DuplicationB.Range)
		kept = append(kept, c)
	}
	return kept
}

// pairKey is order-independent so A/B swaps of the same pair still share
// coverage state.
func pairKey(a, b string) string {
	if a <= b {
		return a + "\x00" + b
	}
	return b + "\x00" + a
}

func fullyCovered(bm *roaring.Bitmap, r core.Range) bool {
	if r.Len() <= 0 {
		return true
	}
	return rangeCardinality(bm, uint64(r.Start), uint64(r.End)) == uint64(r.Len())
}

// rangeCardinality returns the number of set bits in [start, end), matching
// the semantics of the RangeCardinality method unavailable in this version
// of the library.
func rangeCardinality(bm *roaring.Bitmap, start, end uint64) uint64 {
	clone := bm.Clone()
	clone.RemoveRange(0, start)
	clone.RemoveRange(end, uint64(0x100000000))
	return clone.GetCardinality()
}

func markCovered(bm *roaring.Bitmap, r core.Range) {
	if r.Len() <= 0 {
		return
	}
	bm.AddRange(uint64(r.Start), uint64(r.End))
}
