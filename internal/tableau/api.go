package tableau

import "github.com/sam2402/logicCW/internal/parser"

// TheoryOf wraps the parsed form of s as a singleton theory — the bundled
// library's theory(s) entry (spec.md §6). Callers only ever invoke this
// after parser.Code(s) reports a formula (non-zero); NotAFormula has no
// theory of its own.
func TheoryOf(s string) *Theory {
	return NewTheory(parser.Parse(s))
}
