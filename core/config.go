package core

import "fmt"

// Config holds the recognized options of spec.md §6. FormatsExts is surfaced
// only for reporting (spec.md: "used by the discovery collaborator") — the
// core never reads it to decide which files to process.
type Config struct {
	MinLines    int
	MaxLines    int
	MinTokens   int
	MaxSize     int // 0 means "no limit", per spec.md default "none"
	Mode        Mode
	IgnoreCase  bool
	FormatsExts map[string][]string
}

// DefaultConfig returns the defaults listed in spec.md §6.
func DefaultConfig() Config {
	return Config{
		MinLines:  5,
		MaxLines:  1000,
		MinTokens: 50,
		MaxSize:   0,
		Mode:      ModeMild,
	}
}

// Validate fails fast on nonsensical thresholds (spec.md §7 "ConfigInvalid"),
// before any file is processed.
func (c Config) Validate() error {
	switch {
	case c.MinTokens < 1:
		return ConfigInvalidError(fmt.Sprintf("minTokens must be >= 1, got %d", c.MinTokens))
	case c.MinLines < 1:
		return ConfigInvalidError(fmt.Sprintf("minLines must be >= 1, got %d", c.MinLines))
	case c.MaxLines < c.MinLines:
		return ConfigInvalidError(fmt.Sprintf("maxLines (%d) must be >= minLines (%d)", c.MaxLines, c.MinLines))
	case c.MaxSize < 0:
		return ConfigInvalidError(fmt.Sprintf("maxSize must be >= 0, got %d", c.MaxSize))
	case c.Mode != "" && !c.Mode.Valid():
		return ConfigInvalidError(fmt.Sprintf("mode must be strict|mild|weak, got %q", c.Mode))
	}
	return nil
}
