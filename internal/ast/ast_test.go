package ast

import "testing"

func TestStringAndCode(t *testing.T) {
	tests := []struct {
		name       string
		f          Formula
		wantString string
		wantCode   int
		wantFO     bool
	}{
		{"prop atom", PropAtom{Atom: 'p'}, "p", CodePropAtom, false},
		{
			"negation of prop atom", NewNegation(PropAtom{Atom: 'p'}),
			"-p", CodeNegationProp, false,
		},
		{
			"predicate", Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "y"}},
			"P(x,y)", CodeAtom, true,
		},
		{
			"negation of predicate",
			NewNegation(Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "x"}}),
			"-P(x,x)", CodeNegationFO, true,
		},
		{
			"binary prop", NewBinary(PropAtom{Atom: 'p'}, Conjunction, PropAtom{Atom: 'q'}),
			"(p^q)", CodeBinaryProp, false,
		},
		{
			"binary fo",
			NewBinary(
				Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "y"}},
				Implication,
				Predicate{Symbol: 'Q', Left: Term{Name: "x"}, Right: Term{Name: "y"}},
			),
			"(P(x,y)>Q(x,y))", CodeBinaryFO, true,
		},
		{
			"universal",
			Quantifier{Kind: Universal, Variable: "x", Body: Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "x"}}},
			"AxP(x,x)", CodeUniversal, true,
		},
		{
			"existential",
			Quantifier{Kind: Existential, Variable: "x", Body: Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "x"}}},
			"ExP(x,x)", CodeExistential, true,
		},
		{"not a formula", NotAFormula{}, "", CodeNotAFormula, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.String(); got != tc.wantString {
				t.Errorf("String() = %q, want %q", got, tc.wantString)
			}
			if got := tc.f.ParseCode(); got != tc.wantCode {
				t.Errorf("ParseCode() = %d, want %d", got, tc.wantCode)
			}
			if got := tc.f.IsFirstOrder(); got != tc.wantFO {
				t.Errorf("IsFirstOrder() = %v, want %v", got, tc.wantFO)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	p := PropAtom{Atom: 'p'}
	negP := NewNegation(p)

	if !IsLiteral(p) || !IsLiteral(negP) {
		t.Fatal("atom and its negation must both be literals")
	}
	if IsLiteral(NewBinary(p, Conjunction, p)) {
		t.Fatal("a binary formula is never a literal")
	}

	litP := AsLiteral(p)
	litNegP := AsLiteral(negP)
	if !litP.Positive || litNegP.Positive {
		t.Fatalf("polarity mismatch: %+v / %+v", litP, litNegP)
	}
	if litP.Atom != litNegP.Atom {
		t.Fatalf("same-atom literals must share identity: %q != %q", litP.Atom, litNegP.Atom)
	}
	if !litP.Contradicts(litNegP) {
		t.Fatal("p and -p must contradict")
	}
	if litP.Contradicts(litP) {
		t.Fatal("p must not contradict itself")
	}

	q := PropAtom{Atom: 'q'}
	if litP.Contradicts(AsLiteral(q)) {
		t.Fatal("distinct atoms must not contradict")
	}
}

func TestPredicateLiteralNoUnification(t *testing.T) {
	pxy := Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "y"}}
	pyx := Predicate{Symbol: 'P', Left: Term{Name: "y"}, Right: Term{Name: "x"}}
	litXY := AsLiteral(pxy)
	litYX := AsLiteral(NewNegation(pyx))
	if litXY.Contradicts(litYX) {
		t.Fatal("P(x,y) and -P(y,x) must not contradict: no unification of arguments")
	}
}

func TestReplace(t *testing.T) {
	body := Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "x"}}
	got := Replace(body, "x", "var0")
	want := Predicate{Symbol: 'P', Left: Term{Name: "var0"}, Right: Term{Name: "var0"}}
	if got != want {
		t.Errorf("Replace = %+v, want %+v", got, want)
	}

	// Replace leaves other variables untouched.
	mixed := Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "y"}}
	got = Replace(mixed, "x", "var0")
	want = Predicate{Symbol: 'P', Left: Term{Name: "var0"}, Right: Term{Name: "y"}}
	if got != want {
		t.Errorf("Replace = %+v, want %+v", got, want)
	}

	// Replace recurses through quantifiers and binary/negation nodes.
	nested := Quantifier{
		Kind: Existential, Variable: "y",
		Body: NewNegation(Predicate{Symbol: 'P', Left: Term{Name: "x"}, Right: Term{Name: "y"}}),
	}
	gotF := Replace(nested, "x", "var0")
	wantStr := "Ey-P(var0,y)"
	if gotF.String() != wantStr {
		t.Errorf("Replace(nested).String() = %q, want %q", gotF.String(), wantStr)
	}
}

func TestEqualAndKey(t *testing.T) {
	a := NewBinary(PropAtom{Atom: 'p'}, Conjunction, PropAtom{Atom: 'q'})
	b := NewBinary(PropAtom{Atom: 'p'}, Conjunction, PropAtom{Atom: 'q'})
	c := NewBinary(PropAtom{Atom: 'q'}, Conjunction, PropAtom{Atom: 'p'})

	if !Equal(a, b) {
		t.Error("structurally identical formulas must be Equal")
	}
	if Equal(a, c) {
		t.Error("(p^q) and (q^p) are not structurally equal formulas")
	}
	if Key(a) != Key(b) {
		t.Error("Key must agree with Equal")
	}
	if Key(a) == Key(c) {
		t.Error("distinct formulas must have distinct keys")
	}
}
