package lang

import "github.com/moinsen-dev/jscpd2025/core"

var pythonKeywords = words(
	"and", "as", "assert", "async", "await", "break", "class", "continue",
	"def", "del", "elif", "else", "except", "finally", "for", "from",
	"global", "if", "import", "in", "is", "lambda", "nonlocal", "not", "or",
	"pass", "raise", "return", "try", "while", "with", "yield",
)

// pythonGrammar is lexical only: it does not synthesize INDENT/DEDENT
// tokens. Indentation is emitted as ordinary whitespace tokens, and
// mask-key derivation (core.MaskKey) decides per mode whether they count:
// strict and mild keep them, weak drops them.
var pythonGrammar = &Grammar{
	Name:     "python",
	Keywords: pythonKeywords,
	Rules: []Rule{
		rule(core.TokenWhitespace, `[ \t\r\n]+`),
		rule(core.TokenComment, `#[^\n]*`),
		rule(core.TokenString, `(?i)(r|b|u|f|rb|br|fr|rf)?"""([^\\]|\\.)*?"""`),
		rule(core.TokenString, `(?i)(r|b|u|f|rb|br|fr|rf)?'''([^\\]|\\.)*?'''`),
		rule(core.TokenString, `(?i)(r|b|u|f|rb|br|fr|rf)?"(\\.|[^"\\\n])*"`),
		rule(core.TokenString, `(?i)(r|b|u|f|rb|br|fr|rf)?'(\\.|[^'\\\n])*'`),
		rule(core.TokenNumber, `0[xX][0-9a-fA-F_]+|\d[\d_]*\.?[\d_]*([eE][+-]?\d+)?[jJ]?`),
		rule(core.TokenIdentifier, `[A-Za-z_][A-Za-z0-9_]*`),
		rule(core.TokenOperator, `\*\*=?|//=?|<<=?|>>=?|==|!=|<=|>=|:=|->|[+\-*/%&|^<>=~]=?`),
		rule(core.TokenPunct, `[(){}\[\],;.:@]`),
	},
}
