package lang

import "github.com/moinsen-dev/jscpd2025/core"

var jsKeywords = words(
	"async", "await", "break", "case", "catch", "class", "const", "continue",
	"debugger", "default", "delete", "do", "else", "export", "extends",
	"finally", "for", "from", "function", "if", "implements", "import", "in",
	"instanceof", "interface", "let", "new", "of", "package", "private",
	"protected", "public", "readonly", "return", "static", "super", "switch",
	"this", "throw", "try", "type", "typeof", "var", "void", "while", "with",
	"yield",
)

// jsGrammar additionally recognizes template literals (backtick strings) and
// JavaScript-only operators (===, !==, ??, >>>, **), which the shared
// c-style grammar does not have. JSX/TSX angle brackets are lexed as the
// ordinary < and > operators.
var jsGrammar = &Grammar{
	Name:     "javascript",
	Keywords: jsKeywords,
	Rules: []Rule{
		rule(core.TokenWhitespace, `[ \t\r\n]+`),
		rule(core.TokenComment, `//[^\n]*`),
		rule(core.TokenComment, `/\*([^*]|\*[^/])*\*/`),
		rule(core.TokenString, "`(\\\\.|[^`\\\\])*`"),
		rule(core.TokenString, `"(\\.|[^"\\\n])*"`),
		rule(core.TokenString, `'(\\.|[^'\\\n])*'`),
		rule(core.TokenNumber, `0[xX][0-9a-fA-F]+|\d+\.?\d*([eE][+-]?\d+)?n?`),
		rule(core.TokenIdentifier, `[A-Za-z_$][A-Za-z0-9_$]*`),
		rule(core.TokenOperator, `===|!==|\*\*=?|<<=|>>>?=?|&&|\|\||\?\?|=>|\+\+|--|==|!=|<=|>=|[+\-*/%&|^<>=!~]=?`),
		rule(core.TokenPunct, `[(){}\[\],;.:?@]`),
	},
}
