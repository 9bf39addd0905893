package ast

// Equal reports whether a and b are structurally the same formula. Since
// the printed surface syntax is canonical for every variant (spec.md
// §4.5's round-trip property), string equality of the printed forms is
// structural equality here — there is no need for the teacher's
// recursive, type-ranked Compare (grounded on go-tony/ir/compare.go) once
// the grammar is closed and printing is canonical.
func Equal(a, b Formula) bool {
	return a.String() == b.String()
}

// Key returns the canonical string identity of f, used as a map/set key
// for duplicate-branch suppression.
func Key(f Formula) string {
	return f.String()
}
