// Package parser implements the one-character-lookahead recursive-descent
// parser for the propositional and first-order grammars of spec.md §4.1,
// grounded on go-tony/parse/parse.go's entry-point/option shape.
package parser

import (
	"errors"
	"strings"

	"github.com/sam2402/logicCW/internal/ast"
	"github.com/sam2402/logicCW/internal/lexer"
)

// errFail is raised internally on any expect mismatch and caught at the
// root of each parse attempt; it never escapes this package (spec.md §7).
var errFail = errors.New("parser: syntax mismatch")

const (
	propAtoms   = "pqrs"
	foVariables = "xyzw"
	predSymbols = "PQRS"
	binaryOps   = "^v>"
	quantifiers = "AE"
)

type parser struct {
	sc         *lexer.Scanner
	firstOrder bool
}

func (p *parser) expectChar(c byte) error {
	if p.sc.Peek() != c {
		return errFail
	}
	p.sc.Advance()
	return nil
}

func (p *parser) expectAnyOf(set string) (byte, error) {
	c := p.sc.Peek()
	if c == lexer.Sentinel || !strings.ContainsRune(set, rune(c)) {
		return 0, errFail
	}
	p.sc.Advance()
	return c, nil
}

func (p *parser) parseFormula() (ast.Formula, error) {
	switch p.sc.Peek() {
	case '-':
		p.sc.Advance()
		child, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		return ast.NewNegation(child), nil
	case '(':
		return p.parseBinary()
	}
	if p.firstOrder && strings.ContainsRune(quantifiers, rune(p.sc.Peek())) {
		return p.parseQuantifier()
	}
	if p.firstOrder {
		return p.parsePredicate()
	}
	return p.parsePropAtom()
}

func (p *parser) parseBinary() (ast.Formula, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	left, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	con, err := p.expectAnyOf(binaryOps)
	if err != nil {
		return nil, err
	}
	right, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return ast.NewBinary(left, ast.Connective(con), right), nil
}

func (p *parser) parseQuantifier() (ast.Formula, error) {
	kind, err := p.expectAnyOf(quantifiers)
	if err != nil {
		return nil, err
	}
	v, err := p.expectAnyOf(foVariables)
	if err != nil {
		return nil, err
	}
	body, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return ast.Quantifier{Kind: ast.QuantifierKind(kind), Variable: string(v), Body: body}, nil
}

func (p *parser) parsePredicate() (ast.Formula, error) {
	sym, err := p.expectAnyOf(predSymbols)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	left, err := p.expectAnyOf(foVariables)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(','); err != nil {
		return nil, err
	}
	right, err := p.expectAnyOf(foVariables)
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return ast.Predicate{Symbol: sym, Left: ast.Term{Name: string(left)}, Right: ast.Term{Name: string(right)}}, nil
}

func (p *parser) parsePropAtom() (ast.Formula, error) {
	c, err := p.expectAnyOf(propAtoms)
	if err != nil {
		return nil, err
	}
	return ast.PropAtom{Atom: c}, nil
}

// parseOne runs the grammar selected by firstOrder against input and
// converts any failure into NotAFormula. Trailing characters after a
// successful root parse are not checked, per spec.md §4.1's failure
// policy.
func parseOne(input string, firstOrder bool) ast.Formula {
	p := &parser{sc: lexer.New(input), firstOrder: firstOrder}
	f, err := p.parseFormula()
	if err != nil {
		return ast.NotAFormula{}
	}
	return f
}

// dispatch selects the sub-language from the input alphabet alone, per
// spec.md §4.1: propositional atoms take priority over first-order
// variables, and an input with neither is never a formula.
func dispatch(input string) (firstOrder, ok bool) {
	if strings.ContainsAny(input, propAtoms) {
		return false, true
	}
	if strings.ContainsAny(input, foVariables) {
		return true, true
	}
	return false, false
}
