package lang

import "github.com/moinsen-dev/jscpd2025/core"

var goKeywords = words(
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
)

var goGrammar = &Grammar{
	Name:     "go",
	Keywords: goKeywords,
	Rules: []Rule{
		rule(core.TokenWhitespace, `[ \t\r\n]+`),
		rule(core.TokenComment, `//[^\n]*`),
		rule(core.TokenComment, `/\*([^*]|\*[^/])*\*/`),
		rule(core.TokenString, "`[^`]*`"),
		rule(core.TokenString, `"(\\.|[^"\\])*"`),
		rule(core.TokenString, `'(\\.|[^'\\])*'`),
		rule(core.TokenNumber, `0[xX][0-9a-fA-F_]+|\d[\d_]*\.?[\d_]*([eE][+-]?\d+)?i?`),
		rule(core.TokenIdentifier, `[A-Za-z_][A-Za-z0-9_]*`),
		rule(core.TokenOperator, `<<=|>>=|&\^=|&&|\|\||<-|\+\+|--|==|!=|<=|>=|:=|\.\.\.|[+\-*/%&|^<>=!]=?`),
		rule(core.TokenPunct, `[(){}\[\],;.:]`),
	},
}

// words builds a set from a variadic list, used for keyword/skip tables
// throughout the per-language grammars.
func words(ws ...string) map[string]bool {
	m := make(map[string]bool, len(ws))
	for _, w := range ws {
		m[w] = true
	}
	return m
}
