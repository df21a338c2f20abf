package lang

import "github.com/moinsen-dev/jscpd2025/core"

var registry = map[string]*Grammar{}

// register adds g under name and every alias, overwriting nothing (callers
// own their ids).
func register(g *Grammar, aliases ...string) {
	registry[g.Name] = g
	for _, a := range aliases {
		registry[a] = g
	}
}

func init() {
	register(goGrammar, "golang")
	register(cStyleGrammar, "c", "cpp", "c++", "cc", "h", "hpp", "csharp", "cs", "java", "kotlin", "kt", "rust", "rs", "scala", "swift", "dart")
	register(jsGrammar, "js", "javascript", "typescript", "ts", "jsx", "tsx")
	register(pythonGrammar, "py")
	register(genericGrammar, "text", "plaintext")
}

// Lookup returns the grammar registered for format, and whether one exists.
func Lookup(format string) (*Grammar, bool) {
	g, ok := registry[format]
	return g, ok
}

// Tokenize is the C1 contract: tokenize(source, format) → sequence of Token.
// It fails with a core.KindUnknownFormat error when format is not
// registered (spec.md §4.1).
func Tokenize(source, format string) ([]core.Token, error) {
	g, ok := Lookup(format)
	if !ok {
		return nil, core.UnknownFormatError(format)
	}
	return g.Tokenize(source), nil
}

// Registered lists every distinct grammar name currently registered,
// excluding aliases.
func Registered() []string {
	seen := map[*Grammar]bool{}
	names := make([]string, 0, len(registry))
	for _, g := range registry {
		if seen[g] {
			continue
		}
		seen[g] = true
		names = append(names, g.Name)
	}
	return names
}
