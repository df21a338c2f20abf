// Package lang implements spec.md §4.1, the tokenizer (C1): a registry of
// per-language grammars, each an ordered list of token patterns, and the
// greedy longest-match scanner that turns a source string into a sequence of
// core.Token.
package lang

import (
	"regexp"
	"strings"

	"github.com/moinsen-dev/jscpd2025/core"
)

// Rule is one alternative in a language grammar: bytes matching Pattern at
// the current scan position are emitted as a token of Type. Pattern must be
// anchored so it only matches at the start of the string it is given
// (rule() below enforces this).
type Rule struct {
	Type    core.TokenType
	Pattern *regexp.Regexp
}

// rule compiles pattern, anchoring it to the start of input so FindString
// only ever reports a match beginning at the scanner's current position.
func rule(t core.TokenType, pattern string) Rule {
	return Rule{Type: t, Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

// Grammar is a named, ordered set of token rules for one language id.
// Keywords, if set, reclassifies any token the rules typed as
// TokenIdentifier to TokenKeyword when its value is a member: RE2 (used by
// package regexp) has no lookaround to keep a keyword alternative from also
// matching as a prefix of a longer identifier, so keyword recognition is
// done as a post-match lookup instead of as a separate, earlier rule.
type Grammar struct {
	Name     string
	Rules    []Rule
	Keywords map[string]bool
}

// Tokenize scans src against g's rules: greedy and longest-match, with the
// earliest listed alternative winning ties (spec.md §4.1). Bytes matched by
// no rule are emitted individually as TokenUnknown rather than rejected.
func (g *Grammar) Tokenize(src string) []core.Token {
	tokens := make([]core.Token, 0, len(src)/4+1)
	pos := 0
	line := 1
	col := 1

	for pos < len(src) {
		rest := src[pos:]

		bestLen := -1
		var bestType core.TokenType
		for _, r := range g.Rules {
			loc := r.Pattern.FindStringIndex(rest)
			if loc == nil || loc[1] == 0 {
				continue
			}
			if loc[1] > bestLen {
				bestLen = loc[1]
				bestType = r.Type
			}
		}

		var value string
		if bestLen > 0 {
			value = rest[:bestLen]
		} else {
			// No rule matched: consume one byte as an unknown token. Using a
			// single byte (not a decoded rune) keeps Range arithmetic exact
			// even against invalid UTF-8 input.
			value = rest[:1]
			bestType = core.TokenUnknown
		}

		if bestType == core.TokenIdentifier && g.Keywords[value] {
			bestType = core.TokenKeyword
		}

		tok := core.Token{
			Type:   bestType,
			Value:  value,
			Line:   line,
			Column: col,
			Range:  core.Range{Start: pos, End: pos + len(value)},
			Format: g.Name,
		}
		tokens = append(tokens, tok)

		newlines := strings.Count(value, "\n")
		if newlines > 0 {
			line += newlines
			col = len(value) - strings.LastIndex(value, "\n")
		} else {
			col += len(value)
		}
		pos += len(value)
	}

	return tokens
}
