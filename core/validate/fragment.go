package validate

import "github.com/moinsen-dev/jscpd2025/core"

// Fragment populates CloneLocation.Fragment by slicing the owning source's
// content by byte range (spec.md §4.5 "Fragment extraction"). A side whose
// SourceID is missing from Sources is left with an empty fragment rather
// than failing the whole clone — the source set is supplied by the caller
// and is expected to be complete, but a defensive miss should not drop an
// otherwise valid clone.
type Fragment struct {
	Sources map[string]core.Source
}

func (v Fragment) Validate(c core.Clone) (core.Clone, bool) {
	c.DuplicationA.Fragment = v.slice(c.DuplicationA)
	c.DuplicationB.Fragment = v.slice(c.DuplicationB)
	return c, true
}

func (v Fragment) slice(loc core.CloneLocation) string {
	src, ok := v.Sources[loc.SourceID]
	if !ok {
		return ""
	}
	start, end := loc.Range.Start, loc.Range.End
	if start < 0 || end > len(src.Content) || start > end {
		return ""
	}
	return src.Content[start:end]
}
