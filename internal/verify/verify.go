// Package verify cross-checks a satisfiable propositional theory against
// its original formula using a compiled boolean expression, the opt-in
// -verify-model check of SPEC_FULL.md §4.8. It never changes the result
// Sat reports; a mismatch indicates an engine bug, not a different
// verdict, so callers treat it as a reportable inconsistency.
package verify

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/sam2402/logicCW/internal/ast"
	"github.com/sam2402/logicCW/internal/tableau"
)

// ErrFirstOrder is returned when asked to verify a first-order formula;
// the expr environment has no quantifier or predicate semantics, so
// first-order theories are outside this check's scope (SPEC_FULL.md
// §4.8's Non-goal).
var ErrFirstOrder = errors.New("verify: first-order formulas are not supported")

// Model extracts the propositional truth assignment a fully-expanded,
// contradiction-free branch witnesses: one bool per atom letter named by
// a literal member.
func Model(t *tableau.Theory) map[string]bool {
	model := map[string]bool{}
	for _, m := range t.Members() {
		if !ast.IsLiteral(m) {
			continue
		}
		lit := ast.AsLiteral(m)
		if len(lit.Atom) == 1 {
			model[lit.Atom] = lit.Positive
		}
	}
	return model
}

// Verify compiles original as a boolean expression and evaluates it
// against model, reporting whether it holds. It is the cross-check run
// when -verify-model accompanies a satisfiable propositional result.
func Verify(original ast.Formula, model map[string]bool) (bool, error) {
	if original.IsFirstOrder() {
		return false, ErrFirstOrder
	}
	src, err := exprString(original)
	if err != nil {
		return false, err
	}
	env := make(map[string]interface{}, len(model))
	for atom, val := range model {
		env[atom] = val
	}
	// Atoms absent from the witnessing branch (the formula never forced
	// their polarity) default to false; expr-lang treats an undeclared
	// identifier as an error, so every atom letter is seeded.
	for _, atom := range []string{"p", "q", "r", "s"} {
		if _, ok := env[atom]; !ok {
			env[atom] = false
		}
	}
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("verify: compiling %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("verify: running %q: %w", src, err)
	}
	return out.(bool), nil
}

// IndependentSat decides the satisfiability of a propositional formula by
// building it as a boolean circuit and handing it to a CNF-SAT solver,
// independently of the tableau engine. Unlike Verify, which only
// re-evaluates one witness assignment and so can only confirm a
// Satisfiable verdict, IndependentSat re-derives the verdict from
// scratch and can cross-check an Unsatisfiable one too — the -verify-
// model check runs it regardless of which way Sat came back (SPEC_FULL.md
// §4.8). Grounded on go-tony/schema/formula_builder.go's
// checkSatisfiability/CheckAcceptSatisfiability: a *logic.C circuit built
// from the formula, lowered with ToCnf into a fresh gini.Gini instance,
// solved as an assumption.
func IndependentSat(original ast.Formula) (bool, error) {
	if original.IsFirstOrder() {
		return false, ErrFirstOrder
	}
	c := logic.NewC()
	vars := map[string]z.Lit{}
	lit, err := circuitOf(c, vars, original)
	if err != nil {
		return false, err
	}
	g := gini.New()
	c.ToCnf(g)
	g.Assume(lit)
	return g.Solve() == 1, nil
}

// circuitOf lowers a propositional formula into c, one gate per node,
// reusing a single literal per atom letter (vars) so repeated occurrences
// of the same atom share a variable the way formula_builder.go's getVar
// does for repeated (position, type) pairs.
func circuitOf(c *logic.C, vars map[string]z.Lit, f ast.Formula) (z.Lit, error) {
	switch v := f.(type) {
	case ast.PropAtom:
		atom := string(v.Atom)
		if lit, ok := vars[atom]; ok {
			return lit, nil
		}
		lit := c.Lit()
		vars[atom] = lit
		return lit, nil
	case ast.Negation:
		child, err := circuitOf(c, vars, v.Child)
		if err != nil {
			var zero z.Lit
			return zero, err
		}
		return child.Not(), nil
	case ast.Binary:
		left, err := circuitOf(c, vars, v.Left)
		if err != nil {
			var zero z.Lit
			return zero, err
		}
		right, err := circuitOf(c, vars, v.Right)
		if err != nil {
			var zero z.Lit
			return zero, err
		}
		switch v.Con {
		case ast.Conjunction:
			return c.Ands(left, right), nil
		case ast.Disjunction:
			return c.Ors(left, right), nil
		case ast.Implication:
			return c.Ors(left.Not(), right), nil
		}
	}
	var zero z.Lit
	return zero, fmt.Errorf("verify: %w", ErrFirstOrder)
}

// exprString renders a propositional formula as expr-lang syntax: ^, v,
// > become &&, ||, and the material-conditional rewrite !A || B, since
// expr-lang has no native implication operator.
func exprString(f ast.Formula) (string, error) {
	switch v := f.(type) {
	case ast.PropAtom:
		return string(v.Atom), nil
	case ast.Negation:
		child, err := exprString(v.Child)
		if err != nil {
			return "", err
		}
		return "!(" + child + ")", nil
	case ast.Binary:
		left, err := exprString(v.Left)
		if err != nil {
			return "", err
		}
		right, err := exprString(v.Right)
		if err != nil {
			return "", err
		}
		switch v.Con {
		case ast.Conjunction:
			return "(" + left + " && " + right + ")", nil
		case ast.Disjunction:
			return "(" + left + " || " + right + ")", nil
		case ast.Implication:
			return "(!(" + left + ") || " + right + ")", nil
		}
	}
	return "", fmt.Errorf("verify: %w", ErrFirstOrder)
}
