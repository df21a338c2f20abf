package lang

import "github.com/moinsen-dev/jscpd2025/core"

// genericGrammar is the fallback for formats with no dedicated grammar: it
// only distinguishes whitespace, words, numbers, and punctuation, so a
// plain-text or unrecognized-extension source can still be tokenized and
// compared rather than rejected outright at the discovery layer.
var genericGrammar = &Grammar{
	Name: "text",
	Rules: []Rule{
		rule(core.TokenWhitespace, `[ \t\r\n]+`),
		rule(core.TokenNumber, `\d+\.?\d*`),
		rule(core.TokenIdentifier, `[A-Za-z_][A-Za-z0-9_]*`),
		rule(core.TokenPunct, `[[:punct:]]`),
	},
}
