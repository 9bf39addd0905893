// Package tableau implements the branch-and-bound semantic tableau search
// engine of spec.md §4.4: a worklist of theories (branches), non-literal
// selection under α > β > δ priority (with γ folded in below δ per
// SPEC_FULL.md §4.3), contradiction detection, duplicate-branch
// suppression, and fresh-constant budget enforcement.
package tableau

import (
	"sort"

	"github.com/sam2402/logicCW/internal/ast"
	"github.com/sam2402/logicCW/internal/rules"
)

// Theory is a finite set of formulas representing one open branch.
// Membership is by the formula's canonical string key; adding a formula
// already present is a no-op (spec.md §3, "duplicates collapse").
type Theory struct {
	byKey map[string]ast.Formula
}

// NewTheory returns a Theory containing the given members.
func NewTheory(members ...ast.Formula) *Theory {
	t := &Theory{byKey: make(map[string]ast.Formula, len(members))}
	for _, m := range members {
		t.Add(m)
	}
	return t
}

// Add inserts f into the theory, collapsing duplicates by structural key.
func (t *Theory) Add(f ast.Formula) {
	t.byKey[ast.Key(f)] = f
}

// Remove deletes f from the theory.
func (t *Theory) Remove(f ast.Formula) {
	delete(t.byKey, ast.Key(f))
}

// Members returns the theory's formulas in a deterministic (key-sorted)
// order, so branch selection is reproducible across runs.
func (t *Theory) Members() []ast.Formula {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]ast.Formula, len(keys))
	for i, k := range keys {
		res[i] = t.byKey[k]
	}
	return res
}

// Clone returns an independent copy of t, for forking on a β or δ step.
func (t *Theory) Clone() *Theory {
	c := &Theory{byKey: make(map[string]ast.Formula, len(t.byKey))}
	for k, f := range t.byKey {
		c.byKey[k] = f
	}
	return c
}

// Key returns a canonical string identity for the whole theory, used for
// duplicate-branch suppression at the worklist level.
func (t *Theory) Key() string {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := ""
	for _, k := range keys {
		res += k + "\x00"
	}
	return res
}

// FullyExpanded reports whether every member of the theory is a literal.
func (t *Theory) FullyExpanded() bool {
	for _, f := range t.byKey {
		if !ast.IsLiteral(f) {
			return false
		}
	}
	return true
}

// HasContradiction reports whether two literal members share the same
// atom string with opposing polarity.
func (t *Theory) HasContradiction() bool {
	seen := map[string]bool{}
	for _, f := range t.byKey {
		if !ast.IsLiteral(f) {
			continue
		}
		lit := ast.AsLiteral(f)
		if lit.Positive {
			if seen["-"+lit.Atom] {
				return true
			}
			seen["+"+lit.Atom] = true
		} else {
			if seen["+"+lit.Atom] {
				return true
			}
			seen["-"+lit.Atom] = true
		}
	}
	return false
}

// SelectNonLiteral applies the priority rule of spec.md §4.4 step 3: the
// first α-formula encountered wins outright; otherwise the first β- and
// first δ-formula seen are remembered and α > β > δ decides; γ-formulas
// (SPEC_FULL.md §4.3) are remembered last and used only when nothing else
// qualifies. ok is false iff the theory is fully expanded.
func (t *Theory) SelectNonLiteral() (f ast.Formula, kind rules.Kind, ok bool) {
	var beta, delta, gamma ast.Formula
	var haveBeta, haveDelta, haveGamma bool
	for _, m := range t.Members() {
		switch rules.Classify(m) {
		case rules.KindAlpha:
			return m, rules.KindAlpha, true
		case rules.KindBeta:
			if !haveBeta {
				beta, haveBeta = m, true
			}
		case rules.KindDelta:
			if !haveDelta {
				delta, haveDelta = m, true
			}
		case rules.KindGamma:
			if !haveGamma {
				gamma, haveGamma = m, true
			}
		}
	}
	switch {
	case haveBeta:
		return beta, rules.KindBeta, true
	case haveDelta:
		return delta, rules.KindDelta, true
	case haveGamma:
		return gamma, rules.KindGamma, true
	default:
		return nil, rules.KindNone, false
	}
}
