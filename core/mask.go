package core

import "strings"

// MaskKey derives the canonical per-token string used for hashing, per the
// active mode (spec.md §3 "Mask key"). It is deterministic from (token,
// mode, ignoreCase): two tokens with identical mask keys are interchangeable
// for matching purposes.
//
// An empty return value marks the token insignificant under mode — it is
// dropped before frame building (core/framebuild) and never contributes to
// a MapFrame's hash.
func MaskKey(t Token, mode Mode, ignoreCase bool) string {
	switch mode {
	case ModeStrict:
		return maskStrict(t, ignoreCase)
	case ModeWeak:
		return maskWeak(t, ignoreCase)
	case ModeMild:
		fallthrough
	default:
		return maskMild(t, ignoreCase)
	}
}

func maskStrict(t Token, ignoreCase bool) string {
	return foldCase(string(t.Type)+"|"+t.Value, ignoreCase)
}

func maskMild(t Token, ignoreCase bool) string {
	if t.Type == TokenComment {
		return ""
	}
	return foldCase(string(t.Type)+"|"+t.Value, ignoreCase)
}

func maskWeak(t Token, ignoreCase bool) string {
	switch t.Type {
	case TokenComment, TokenWhitespace:
		return ""
	case TokenIdentifier, TokenString, TokenNumber:
		// collapse identifiers and literals by type: the value itself does
		// not participate, only its category.
		return string(t.Type)
	default:
		return foldCase(string(t.Type)+"|"+t.Value, ignoreCase)
	}
}

func foldCase(s string, ignoreCase bool) string {
	if ignoreCase {
		return strings.ToLower(s)
	}
	return s
}

// Significant reports whether t contributes to hashing under mode/ignoreCase.
func Significant(t Token, mode Mode, ignoreCase bool) bool {
	return MaskKey(t, mode, ignoreCase) != ""
}
