package rules

import (
	"testing"

	"github.com/sam2402/logicCW/internal/ast"
)

func p(c byte) ast.Formula { return ast.PropAtom{Atom: c} }

func TestClassifyAndExpandAlpha(t *testing.T) {
	f := ast.NewBinary(p('p'), ast.Conjunction, p('q'))
	if k := Classify(f); k != KindAlpha {
		t.Fatalf("Classify(p^q) = %v, want KindAlpha", k)
	}
	exp := Expand(f, "")
	if exp.Kind != KindAlpha || len(exp.Branches) != 1 || len(exp.Branches[0]) != 2 {
		t.Fatalf("Expand(p^q) = %+v", exp)
	}
	if exp.Branches[0][0].String() != "p" || exp.Branches[0][1].String() != "q" {
		t.Fatalf("Expand(p^q) branches = %v", exp.Branches[0])
	}
}

func TestClassifyAndExpandDoubleNegation(t *testing.T) {
	f := ast.NewNegation(ast.NewNegation(p('p')))
	if k := Classify(f); k != KindAlpha {
		t.Fatalf("Classify(--p) = %v, want KindAlpha", k)
	}
	exp := Expand(f, "")
	if exp.Branches[0][0].String() != "p" {
		t.Fatalf("Expand(--p) = %+v", exp)
	}
}

func TestClassifyAndExpandBeta(t *testing.T) {
	cases := []struct {
		name     string
		f        ast.Formula
		wantCon0 string
		wantCon1 string
	}{
		{"disjunction", ast.NewBinary(p('p'), ast.Disjunction, p('q')), "p", "q"},
		{"implication", ast.NewBinary(p('p'), ast.Implication, p('q')), "-p", "q"},
		{"negated conjunction", ast.NewNegation(ast.NewBinary(p('p'), ast.Conjunction, p('q'))), "-p", "-q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if k := Classify(tc.f); k != KindBeta {
				t.Fatalf("Classify(%s) = %v, want KindBeta", tc.f, k)
			}
			exp := Expand(tc.f, "")
			if exp.Kind != KindBeta || len(exp.Branches) != 2 {
				t.Fatalf("Expand(%s) = %+v", tc.f, exp)
			}
			if exp.Branches[0][0].String() != tc.wantCon0 || exp.Branches[1][0].String() != tc.wantCon1 {
				t.Fatalf("Expand(%s) branches = %v / %v", tc.f, exp.Branches[0], exp.Branches[1])
			}
		})
	}
}

func TestClassifyAndExpandNegatedDisjunctionAndImplication(t *testing.T) {
	disj := ast.NewNegation(ast.NewBinary(p('p'), ast.Disjunction, p('q')))
	if k := Classify(disj); k != KindAlpha {
		t.Fatalf("Classify(-(pvq)) = %v, want KindAlpha", k)
	}
	exp := Expand(disj, "")
	if exp.Branches[0][0].String() != "-p" || exp.Branches[0][1].String() != "-q" {
		t.Fatalf("Expand(-(pvq)) = %v", exp.Branches[0])
	}

	impl := ast.NewNegation(ast.NewBinary(p('p'), ast.Implication, p('q')))
	if k := Classify(impl); k != KindAlpha {
		t.Fatalf("Classify(-(p>q)) = %v, want KindAlpha", k)
	}
	exp = Expand(impl, "")
	if exp.Branches[0][0].String() != "p" || exp.Branches[0][1].String() != "-q" {
		t.Fatalf("Expand(-(p>q)) = %v", exp.Branches[0])
	}
}

func TestClassifyAndExpandDelta(t *testing.T) {
	body := ast.Predicate{Symbol: 'P', Left: ast.Term{Name: "x"}, Right: ast.Term{Name: "x"}}
	ex := ast.Quantifier{Kind: ast.Existential, Variable: "x", Body: body}
	if k := Classify(ex); k != KindDelta {
		t.Fatalf("Classify(ExP(x,x)) = %v, want KindDelta", k)
	}
	exp := Expand(ex, "var0")
	if exp.Kind != KindDelta || exp.Branches[0][0].String() != "P(var0,var0)" {
		t.Fatalf("Expand(ExP(x,x)) = %+v", exp)
	}

	negUniv := ast.NewNegation(ast.Quantifier{Kind: ast.Universal, Variable: "x", Body: body})
	if k := Classify(negUniv); k != KindDelta {
		t.Fatalf("Classify(-AxP(x,x)) = %v, want KindDelta", k)
	}
	exp = Expand(negUniv, "var0")
	if exp.Branches[0][0].String() != "-P(var0,var0)" {
		t.Fatalf("Expand(-AxP(x,x)) = %+v", exp)
	}
}

func TestClassifyAndExpandGamma(t *testing.T) {
	body := ast.Predicate{Symbol: 'P', Left: ast.Term{Name: "x"}, Right: ast.Term{Name: "x"}}
	univ := ast.Quantifier{Kind: ast.Universal, Variable: "x", Body: body}
	if k := Classify(univ); k != KindGamma {
		t.Fatalf("Classify(AxP(x,x)) = %v, want KindGamma", k)
	}
	if exp := Expand(univ, ""); exp.Kind != KindGamma || len(exp.Branches) != 0 {
		t.Fatalf("Expand(AxP(x,x)) = %+v", exp)
	}

	negEx := ast.NewNegation(ast.Quantifier{Kind: ast.Existential, Variable: "x", Body: body})
	if k := Classify(negEx); k != KindGamma {
		t.Fatalf("Classify(-ExP(x,x)) = %v, want KindGamma", k)
	}
}

func TestClassifyLiteral(t *testing.T) {
	if k := Classify(p('p')); k != KindNone {
		t.Fatalf("Classify(p) = %v, want KindNone", k)
	}
	if k := Classify(ast.NewNegation(p('p'))); k != KindNone {
		t.Fatalf("Classify(-p) = %v, want KindNone", k)
	}
}
