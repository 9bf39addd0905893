package ast

// Replace returns a structurally new formula with every occurrence of the
// variable named old replaced by new. There is no capture-avoidance to
// worry about: new is always a name freshly minted by the constant pool
// and therefore appears nowhere else in the run (spec.md §4.2).
func Replace(f Formula, old, new_ string) Formula {
	switch v := f.(type) {
	case PropAtom:
		return v
	case Predicate:
		return Predicate{
			Symbol: v.Symbol,
			Left:   replaceTerm(v.Left, old, new_),
			Right:  replaceTerm(v.Right, old, new_),
		}
	case Negation:
		return NewNegation(Replace(v.Child, old, new_))
	case Binary:
		return NewBinary(Replace(v.Left, old, new_), v.Con, Replace(v.Right, old, new_))
	case Quantifier:
		variable := v.Variable
		if variable == old {
			variable = new_
		}
		return Quantifier{Kind: v.Kind, Variable: variable, Body: Replace(v.Body, old, new_)}
	case NotAFormula:
		return v
	default:
		panic("ast: unreachable formula variant")
	}
}

func replaceTerm(t Term, old, new_ string) Term {
	if t.Name == old {
		return Term{Name: new_}
	}
	return t
}
