package tableau

import (
	"fmt"

	"github.com/sam2402/logicCW/internal/rules"
)

// DefaultMaxConstants is MAX_CONSTANTS from spec.md §4.4: the bound on
// fresh witness constants a single Sat call may introduce.
const DefaultMaxConstants = 10

// Satisfiability result codes, spec.md §6.
const (
	Unsatisfiable = 0
	Satisfiable   = 1
	Unknown       = 2
)

// Tableau is the worklist of open branches. Order is not semantically
// significant; the engine always processes the most recently added
// theory first (depth-first), per spec.md §3.
type Tableau struct {
	worklist []*Theory
}

// NewTableau returns a tableau whose sole branch is t, the initial call
// shape spec.md §4.4 describes.
func NewTableau(t *Theory) *Tableau {
	return &Tableau{worklist: []*Theory{t}}
}

// session owns one run's fresh-constant pool, resolving spec.md §9(b):
// the counter never survives across Sat calls.
type session struct {
	maxConstants int
	budgetUsed   int // δ and γ steps charged against the bound
	nameCounter  int // actual var0, var1, ... issued to δ-expansions
}

func (s *session) budgetExceeded() bool {
	return s.budgetUsed >= s.maxConstants
}

func (s *session) chargeBudget() {
	s.budgetUsed++
}

func (s *session) freshName() string {
	name := fmt.Sprintf("var%d", s.nameCounter)
	s.nameCounter++
	return name
}

// contains reports whether a theory with the same structural key as t is
// already present in worklist (duplicate-branch suppression, spec.md
// §4.4).
func contains(worklist []*Theory, t *Theory) bool {
	key := t.Key()
	for _, w := range worklist {
		if w.Key() == key {
			return true
		}
	}
	return false
}

// Event describes one worklist pop processed by the engine, reported to an
// optional Hook so a caller can observe the search without the engine
// itself depending on any presentation concern (SPEC_FULL.md §4.7).
type Event struct {
	// Before lists the popped branch's members, printed, before Selected
	// is removed from it.
	Before []string
	// Selected is the printed form of the non-literal chosen by
	// Theory.SelectNonLiteral, or "" when the branch was already fully
	// expanded (a pure accept/reject step).
	Selected string
	// Kind names the expansion rule applied: "alpha", "beta", "delta",
	// "gamma", or "leaf" for a fully-expanded branch.
	Kind string
	// After lists the printed members of each resulting branch: one
	// entry for alpha/leaf, two for beta, one per witness for delta,
	// none for gamma.
	After [][]string
}

// Hook receives one Event per worklist pop. It must not retain or mutate
// the slices inside Event beyond the call.
type Hook func(Event)

func printMembers(t *Theory) []string {
	members := t.Members()
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.String()
	}
	return out
}

// Sat decides satisfiability of tab using the default fresh-constant
// budget.
func Sat(tab *Tableau) int {
	return SatWithBudget(tab, DefaultMaxConstants)
}

// SatWithBudget decides satisfiability of tab, capping fresh-constant
// introduction at maxConstants.
func SatWithBudget(tab *Tableau, maxConstants int) int {
	code, _ := run(tab, maxConstants, nil)
	return code
}

// SatTraced decides satisfiability of tab exactly as SatWithBudget does,
// additionally invoking hook once per worklist pop. Passing a nil hook
// behaves like SatWithBudget.
func SatTraced(tab *Tableau, maxConstants int, hook Hook) int {
	code, _ := run(tab, maxConstants, hook)
	return code
}

// SatModel decides satisfiability of tab like SatTraced, additionally
// returning the witnessing branch when the result is Satisfiable (nil
// otherwise). It exists for the opt-in model-verification cross-check
// (SPEC_FULL.md §4.8), which needs the literal assignment that closed
// the search, not just the verdict.
func SatModel(tab *Tableau, maxConstants int, hook Hook) (int, *Theory) {
	return run(tab, maxConstants, hook)
}

func run(tab *Tableau, maxConstants int, hook Hook) (int, *Theory) {
	s := &session{maxConstants: maxConstants}
	worklist := append([]*Theory(nil), tab.worklist...)

	for len(worklist) > 0 {
		n := len(worklist) - 1
		t := worklist[n]
		worklist = worklist[:n]

		if t.FullyExpanded() {
			if hook != nil {
				hook(Event{Before: printMembers(t), Kind: "leaf", After: [][]string{printMembers(t)}})
			}
			if !t.HasContradiction() {
				return Satisfiable, t
			}
			continue
		}

		before := ([]string)(nil)
		if hook != nil {
			before = printMembers(t)
		}

		f, kind, ok := t.SelectNonLiteral()
		if !ok {
			// Fully expanded was already handled above; an unexpanded
			// theory always has a non-literal member.
			continue
		}

		if kind == rules.KindDelta || kind == rules.KindGamma {
			if s.budgetExceeded() {
				return Unknown, nil
			}
			s.chargeBudget()
		}

		if kind == rules.KindGamma {
			// No expansion is possible; the branch is re-queued unchanged.
			// Each pass charges the budget, so this terminates once the
			// bound is reached (spec.md §9(a)).
			if hook != nil {
				hook(Event{Before: before, Selected: f.String(), Kind: "gamma"})
			}
			worklist = append(worklist, t)
			continue
		}

		t.Remove(f)
		var fresh string
		if kind == rules.KindDelta {
			fresh = s.freshName()
		}
		exp := rules.Expand(f, fresh)

		switch exp.Kind {
		case rules.KindAlpha:
			for _, add := range exp.Branches[0] {
				t.Add(add)
			}
			if hook != nil {
				hook(Event{Before: before, Selected: f.String(), Kind: "alpha", After: [][]string{printMembers(t)}})
			}
			if !t.HasContradiction() && !contains(worklist, t) {
				worklist = append(worklist, t)
			}
		case rules.KindBeta, rules.KindDelta:
			var after [][]string
			var children []*Theory
			for _, branch := range exp.Branches {
				child := t.Clone()
				for _, add := range branch {
					child.Add(add)
				}
				children = append(children, child)
				if hook != nil {
					after = append(after, printMembers(child))
				}
			}
			if hook != nil {
				kindName := "beta"
				if kind == rules.KindDelta {
					kindName = "delta"
				}
				hook(Event{Before: before, Selected: f.String(), Kind: kindName, After: after})
			}
			for _, child := range children {
				if !child.HasContradiction() && !contains(worklist, child) {
					worklist = append(worklist, child)
				}
			}
		}
	}
	return Unsatisfiable, nil
}
