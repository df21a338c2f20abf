package core

// FormatStatistic aggregates duplication counters for one language format.
type FormatStatistic struct {
	Sources          int
	Lines            int
	Tokens           int
	Clones           int
	DuplicatedLines  int
	DuplicatedTokens int
	Percentage       float64 // DuplicatedLines / Lines * 100
	PercentageTokens float64 // DuplicatedTokens / Tokens * 100
}

// Statistic is the aggregate result of a run: totals plus a per-format
// breakdown (spec.md §3 "Statistic").
type Statistic struct {
	Total   FormatStatistic
	Formats map[string]*FormatStatistic
}

// NewStatistic returns a zeroed Statistic ready for accumulation.
func NewStatistic() *Statistic {
	return &Statistic{Formats: make(map[string]*FormatStatistic)}
}

func (s *Statistic) formatFor(format string) *FormatStatistic {
	fs, ok := s.Formats[format]
	if !ok {
		fs = &FormatStatistic{}
		s.Formats[format] = fs
	}
	return fs
}

// AddSource records that one source file of the given format, with the
// given line and significant-token counts, was processed.
func (s *Statistic) AddSource(format string, lines, tokens int) {
	fs := s.formatFor(format)
	fs.Sources++
	fs.Lines += lines
	fs.Tokens += tokens
	s.Total.Sources++
	s.Total.Lines += lines
	s.Total.Tokens += tokens
	s.recompute(fs)
}

// AddClone folds one accepted clone's duplicated-line/token counts into the
// statistic under the given format. Both sides are counted against that one
// format's totals; the store and mask keys do not record a format, so a
// clone's A side may come from a source of another format and is still
// counted here.
func (s *Statistic) AddClone(format string, linesA, tokensA, linesB, tokensB int) {
	fs := s.formatFor(format)
	fs.Clones++
	fs.DuplicatedLines += linesA + linesB
	fs.DuplicatedTokens += tokensA + tokensB
	s.Total.Clones++
	s.Total.DuplicatedLines += linesA + linesB
	s.Total.DuplicatedTokens += tokensA + tokensB
	s.recompute(fs)
	s.recompute(&s.Total)
}

func (s *Statistic) recompute(fs *FormatStatistic) {
	if fs.Lines > 0 {
		fs.Percentage = float64(fs.DuplicatedLines) / float64(fs.Lines) * 100
	}
	if fs.Tokens > 0 {
		fs.PercentageTokens = float64(fs.DuplicatedTokens) / float64(fs.Tokens) * 100
	}
}
