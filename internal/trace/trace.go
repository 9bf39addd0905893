// Package trace renders tableau.Event values as human-readable engine
// step logs when the driver's -trace flag is set (SPEC_FULL.md §4.7). It
// never influences classification or satisfiability: a Tracer is purely
// an observer wired onto tableau.SatTraced's Hook.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sam2402/logicCW/internal/tableau"
)

// Tracer writes one line (or more, for a diff) per tableau.Event to W.
type Tracer struct {
	W io.Writer
}

// New returns a Tracer writing to w.
func New(w io.Writer) *Tracer {
	return &Tracer{W: w}
}

// Hook adapts t into a tableau.Hook, the shape SatTraced expects.
func (t *Tracer) Hook() tableau.Hook {
	return t.onEvent
}

func (t *Tracer) onEvent(e tableau.Event) {
	switch e.Kind {
	case "leaf":
		fmt.Fprintf(t.W, "leaf: %s\n", strings.Join(e.Before, ", "))
	case "gamma":
		fmt.Fprintf(t.W, "gamma (no progress, budget charged): %s\n", e.Selected)
	case "alpha":
		fmt.Fprintf(t.W, "alpha on %s:\n%s\n", e.Selected, mergePatch(e.Before, e.After[0]))
	case "beta":
		fmt.Fprintf(t.W, "beta on %s, %d forks:\n", e.Selected, len(e.After))
		for i, after := range e.After {
			fmt.Fprintf(t.W, "  fork %d:\n%s\n", i, indent(textDiff(e.Before, after)))
		}
	case "delta":
		fmt.Fprintf(t.W, "delta on %s:\n%s\n", e.Selected, indent(textDiff(e.Before, e.After[0])))
	}
}

// membersDoc is the JSON shape a theory's member list is marshaled to
// before computing a merge patch, mirroring the way mergeop's JSONPatch
// operator (go-tony/mergeop/jsonpatch.go) marshals an *ir.Node through
// eval.MarshalJSON before handing it to evanphx/json-patch.
type membersDoc struct {
	Members []string `json:"members"`
}

// mergePatch reports the RFC 7386 JSON merge patch from before to after,
// the single-branch (alpha) case where the whole document is replaced.
func mergePatch(before, after []string) string {
	fromJSON, err := json.Marshal(membersDoc{Members: before})
	if err != nil {
		return fmt.Sprintf("  (patch unavailable: %v)", err)
	}
	toJSON, err := json.Marshal(membersDoc{Members: after})
	if err != nil {
		return fmt.Sprintf("  (patch unavailable: %v)", err)
	}
	patch, err := jsonpatch.CreateMergePatch(fromJSON, toJSON)
	if err != nil {
		return fmt.Sprintf("  (patch unavailable: %v)", err)
	}
	return "  " + string(patch)
}

// textDiff reports a human-readable diff between the sorted member lists
// before and after, the same diffmatchpatch entry point libdiff's
// DiffArrayByIndex uses, applied to a newline-joined text rather than a
// rune sequence keyed by node identity since a branch fork has no index
// correspondence to preserve.
func textDiff(before, after []string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(strings.Join(before, "\n"), strings.Join(after, "\n"), false)
	return dmp.DiffPrettyText(diffs)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
