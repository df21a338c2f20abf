package lang

import "github.com/moinsen-dev/jscpd2025/core"

// cStyleGrammar covers the brace-and-semicolon family retrieved alongside
// the teacher's skipFirstWords table (C, C++, C#, Java, Kotlin, Rust, Scala,
// Swift, Dart): similar enough in comment/string/operator shape that one
// grammar serves all of them for tokenization purposes. Per-language
// semantics beyond lexing (e.g. Dart's "widget" marker) are out of scope for
// spec.md's tokenizer contract.
var cStyleKeywords = words(
	"abstract", "as", "async", "await", "break", "case", "catch", "class",
	"const", "continue", "default", "do", "else", "enum", "export", "extends",
	"final", "finally", "for", "fn", "fun", "func", "if", "impl", "implements",
	"import", "in", "interface", "let", "match", "mod", "mut", "new",
	"override", "package", "private", "protected", "pub", "public", "return",
	"static", "struct", "super", "switch", "this", "throw", "throws", "trait",
	"try", "typeof", "use", "val", "var", "void", "while", "yield",
)

var cStyleGrammar = &Grammar{
	Name:     "c-style",
	Keywords: cStyleKeywords,
	Rules: []Rule{
		rule(core.TokenWhitespace, `[ \t\r\n]+`),
		rule(core.TokenComment, `//[^\n]*`),
		rule(core.TokenComment, `/\*([^*]|\*[^/])*\*/`),
		rule(core.TokenString, `"""([^\\]|\\.)*?"""`),
		rule(core.TokenString, `"(\\.|[^"\\\n])*"`),
		rule(core.TokenString, `'(\\.|[^'\\\n])*'`),
		rule(core.TokenNumber, `0[xX][0-9a-fA-F]+|\d+\.?\d*([eE][+-]?\d+)?[fFlLuU]*`),
		rule(core.TokenIdentifier, `[A-Za-z_$][A-Za-z0-9_$]*`),
		rule(core.TokenOperator, `<<=|>>=|&&|\|\||->|=>|::|\+\+|--|==|!=|<=|>=|[+\-*/%&|^<>=!~]=?`),
		rule(core.TokenPunct, `[(){}\[\],;.:?@]`),
	},
}
