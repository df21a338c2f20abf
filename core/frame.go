package core

// MapFrame is a consecutive run of exactly minTokens significant tokens
// (spec.md §3 "MapFrame"). Id is a content hash of the concatenated mask
// keys of the tokens it covers; two frames with equal Id are candidates for
// a match, subject to mandatory byte-wise verification (spec.md §4.2).
type MapFrame struct {
	ID       uint64
	SourceID string
	Start    Position // line/column/byte-offset of the first token in the window
	End      Position // line/column/byte-offset of the end of the last token in the window
	Index    int      // 0-based position of this window in the file's window sequence

	// TokenStart/TokenEnd index into the filtered, significant-token
	// sequence the builder produced (not the raw tokenizer output). They
	// let the matcher recover the exact set of tokens a frame spans
	// without re-deriving it from byte ranges.
	TokenStart int
	TokenEnd   int // exclusive
}

// Line and Column of the frame's first and last token, used when a clone is
// finally materialized from a matched frame span.
type Position struct {
	Line     int
	Column   int
	Position int // byte offset
}
