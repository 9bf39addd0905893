// Package rules implements the α/β/δ expansion rules of spec.md §4.3,
// folding in the γ (universal / negated-existential) case spec.md §9(a)
// asks for as the lowest-priority, budget-consuming "no progress"
// convention. Each formula shape is handled by exactly one case, the way
// the teacher dedicates one file per mergeop operator (mergeop/and.go,
// mergeop/not.go) — here collapsed into a single type switch, since the
// dispatch key is the formula's own Go type rather than a parsed symbol
// string.
package rules

import "github.com/sam2402/logicCW/internal/ast"

// Kind tags the shape of an expansion.
type Kind int

const (
	// KindNone formulas are literals (or NotAFormula): nothing to expand.
	KindNone Kind = iota
	// KindAlpha expansions shrink a branch without forking it.
	KindAlpha
	// KindBeta expansions fork the branch into independent alternatives.
	KindBeta
	// KindDelta expansions consume one fresh witness constant.
	KindDelta
	// KindGamma marks a universally-quantified (or negated-existential)
	// formula this procedure does not expand; it is handled like a δ step
	// for budget-accounting purposes but introduces no fresh constant and
	// adds nothing to any branch (spec.md §9(a)).
	KindGamma
)

// Expansion is the result of expanding a single non-literal formula.
// Branches holds one formula set per resulting branch: length 1 for an
// α or δ expansion (the branch is extended, not forked), length 2 for a
// β expansion (two independent forks), length 0 for a γ expansion (no
// progress is possible).
type Expansion struct {
	Kind     Kind
	Branches [][]ast.Formula
}

// Classify reports the expansion kind of f without performing any
// substitution, used by the engine's non-literal priority scan.
func Classify(f ast.Formula) Kind {
	switch v := f.(type) {
	case ast.Negation:
		return classifyNegation(v)
	case ast.Binary:
		return classifyBinary(v.Con, false)
	case ast.Quantifier:
		if v.Kind == ast.Existential {
			return KindDelta
		}
		return KindGamma
	default:
		return KindNone
	}
}

func classifyNegation(n ast.Negation) Kind {
	switch c := n.Child.(type) {
	case ast.Negation:
		return KindAlpha
	case ast.Binary:
		return classifyBinary(c.Con, true)
	case ast.Quantifier:
		if c.Kind == ast.Universal {
			return KindDelta
		}
		return KindGamma
	default:
		return KindNone
	}
}

func classifyBinary(con ast.Connective, negated bool) Kind {
	switch con {
	case ast.Conjunction:
		if negated {
			return KindBeta
		}
		return KindAlpha
	case ast.Disjunction, ast.Implication:
		if negated {
			return KindAlpha
		}
		return KindBeta
	default:
		return KindNone
	}
}

// Expand computes the expansion of f. freshName is the witness constant
// to substitute for a δ-expansion's bound variable; it is ignored by every
// other kind, so callers may pass "" unless Classify(f) == KindDelta. The
// caller is responsible for checking the fresh-constant budget before
// calling Expand on a KindDelta (or KindGamma) formula, per spec.md §4.4
// step 4.
func Expand(f ast.Formula, freshName string) Expansion {
	switch v := f.(type) {
	case ast.Negation:
		return expandNegation(v, freshName)
	case ast.Binary:
		return expandBinary(v)
	case ast.Quantifier:
		return expandQuantifier(v, freshName)
	default:
		return Expansion{Kind: KindNone}
	}
}

func expandNegation(n ast.Negation, freshName string) Expansion {
	switch c := n.Child.(type) {
	case ast.Negation:
		// ¬¬A -> {A}
		return Expansion{Kind: KindAlpha, Branches: [][]ast.Formula{{c.Child}}}
	case ast.Binary:
		switch c.Con {
		case ast.Disjunction:
			// ¬(A v B) -> {¬A, ¬B}
			return Expansion{Kind: KindAlpha, Branches: [][]ast.Formula{
				{ast.NewNegation(c.Left), ast.NewNegation(c.Right)},
			}}
		case ast.Implication:
			// ¬(A > B) -> {A, ¬B}
			return Expansion{Kind: KindAlpha, Branches: [][]ast.Formula{
				{c.Left, ast.NewNegation(c.Right)},
			}}
		case ast.Conjunction:
			// ¬(A ^ B) -> {¬A} / {¬B}
			return Expansion{Kind: KindBeta, Branches: [][]ast.Formula{
				{ast.NewNegation(c.Left)},
				{ast.NewNegation(c.Right)},
			}}
		}
	case ast.Quantifier:
		if c.Kind == ast.Universal {
			// ¬Av.φ -> {¬φ[v := fresh]}
			body := ast.Replace(c.Body, c.Variable, freshName)
			return Expansion{Kind: KindDelta, Branches: [][]ast.Formula{
				{ast.NewNegation(body)},
			}}
		}
		// ¬Ev.φ is an unsupported γ-rule.
		return Expansion{Kind: KindGamma}
	}
	return Expansion{Kind: KindNone}
}

func expandBinary(b ast.Binary) Expansion {
	switch b.Con {
	case ast.Conjunction:
		// A ^ B -> {A, B}
		return Expansion{Kind: KindAlpha, Branches: [][]ast.Formula{{b.Left, b.Right}}}
	case ast.Disjunction:
		// A v B -> {A} / {B}
		return Expansion{Kind: KindBeta, Branches: [][]ast.Formula{{b.Left}, {b.Right}}}
	case ast.Implication:
		// A > B -> {¬A} / {B}
		return Expansion{Kind: KindBeta, Branches: [][]ast.Formula{{ast.NewNegation(b.Left)}, {b.Right}}}
	}
	return Expansion{Kind: KindNone}
}

func expandQuantifier(q ast.Quantifier, freshName string) Expansion {
	if q.Kind == ast.Existential {
		// Ev.φ -> {φ[v := fresh]}
		body := ast.Replace(q.Body, q.Variable, freshName)
		return Expansion{Kind: KindDelta, Branches: [][]ast.Formula{{body}}}
	}
	// Av.φ is an unsupported γ-rule.
	return Expansion{Kind: KindGamma}
}
