package ast

// IsLiteral reports whether f is an atom or the negation of an atom.
func IsLiteral(f Formula) bool {
	switch v := f.(type) {
	case PropAtom, Predicate:
		return true
	case Negation:
		switch v.Child.(type) {
		case PropAtom, Predicate:
			return true
		}
	}
	return false
}

// Literal is the polarity-tagged projection of an atom used only for
// contradiction detection. Its identity is the printed form of the
// underlying atom: "P(x,y)" and "P(x,y)" match, "P(x,y)" and "P(y,x)" do
// not (no unification, per spec.md's Non-goals).
type Literal struct {
	Atom     string
	Positive bool
}

// AsLiteral converts a literal formula (per IsLiteral) into a Literal. It
// does not check its argument: a non-literal f yields a Literal built from
// its printed form (or its negated child's), so callers check IsLiteral
// first.
func AsLiteral(f Formula) Literal {
	if n, ok := f.(Negation); ok {
		return Literal{Atom: n.Child.String(), Positive: false}
	}
	return Literal{Atom: f.String(), Positive: true}
}

// Contradicts reports whether a and b are the same atom with opposing
// polarity.
func (a Literal) Contradicts(b Literal) bool {
	return a.Atom == b.Atom && a.Positive != b.Positive
}
