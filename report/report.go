// Package report renders a verification run into its fixed textual form.
//
// The output is a compatibility contract: other implementations of this
// verifier must reproduce it byte for byte, so section order, fixed strings
// and numeric formatting are all load-bearing. Change nothing here without a
// matching change on every other side of that contract.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/qubolab/qverify/qubo"
)

// FormatFloat renders v with fixed 6-decimal precision, then strips trailing
// zeros and a trailing bare decimal point: 1.000000 -> "1", 0.500000 -> "0.5".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Render assembles the full report. versionMeta is optional; when non-empty
// it appends a trailing Version block with sorted key=value lines. Lines are
// joined by \n with no trailing newline (the CLI appends one when printing).
func Render(problem *qubo.Problem, solution *qubo.Solution, result qubo.RunResult, versionMeta map[string]string) string {
	lines := []string{fmt.Sprintf(
		"Input: vars=%d, constraints=%d, candidate=%s",
		len(problem.Variables), len(problem.Constraints), solution.Label,
	)}
	lines = append(lines, renderFeasibility(result.Feasibility)...)
	lines = append(lines, renderObjective(result.Objective)...)
	lines = append(lines, renderComparator(result.BestKnown, result.Gap)...)
	lines = append(lines, renderSensitivity(result.Sensitivity)...)
	lines = append(lines, renderSolvers(result.Solvers)...)
	lines = append(lines, renderVersion(versionMeta)...)
	return strings.Join(lines, "\n")
}

func renderFeasibility(feas qubo.FeasibilityResult) []string {
	lines := []string{"Feasibility: " + string(feas.Status)}
	if len(feas.Violations) > 0 {
		lines = append(lines, "Violations:")
		for _, v := range feas.Violations {
			lines = append(lines, fmt.Sprintf("  %s: %s", v.Label, FormatFloat(v.Amount)))
		}
	} else {
		lines = append(lines, "Violations: none")
	}
	if len(feas.Binding) > 0 {
		lines = append(lines, "Binding constraints:")
		for _, label := range feas.Binding {
			lines = append(lines, "  "+label)
		}
	}
	return lines
}

func renderObjective(obj *qubo.ObjectiveResult) []string {
	if obj == nil {
		return []string{"Objective: n/a"}
	}
	return []string{
		"Objective:",
		"  linear=" + FormatFloat(obj.LinearValue),
		"  quadratic=" + FormatFloat(obj.QuadraticValue),
		"  total=" + FormatFloat(obj.Total),
	}
}

func renderComparator(best *qubo.BestKnown, gap *float64) []string {
	lines := []string{"Comparator:"}
	if best == nil {
		return append(lines, "  best_known: none", "  gap: unknown")
	}
	lines = append(lines, fmt.Sprintf("  best_known: %s (label=%s)", FormatFloat(best.Value), best.Label))
	if gap == nil {
		return append(lines, "  gap: undefined (best_known is zero or missing)")
	}
	return append(lines, fmt.Sprintf("  gap: %s%%", FormatFloat(*gap)))
}

func renderSensitivity(entries []qubo.SensitivityEntry) []string {
	lines := []string{"Sensitivity (bit flips):"}
	if len(entries) == 0 {
		return append(lines, "  none (skipped)")
	}
	for _, e := range entries {
		feas := "feasible"
		if !e.FeasibleAfterFlip {
			feas = "infeasible"
		}
		lines = append(lines, fmt.Sprintf("  %s flip -> %s (%s)", e.Var, FormatFloat(e.Delta), feas))
	}
	return lines
}

func renderSolvers(comparison map[string]*float64) []string {
	lines := []string{"Solver comparison:"}
	if len(comparison) == 0 {
		return append(lines, "  none")
	}
	names := make([]string, 0, len(comparison))
	for name := range comparison {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if val := comparison[name]; val != nil {
			lines = append(lines, fmt.Sprintf("  %s: %s", name, FormatFloat(*val)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s: skipped", name))
		}
	}
	return lines
}

func renderVersion(meta map[string]string) []string {
	if len(meta) == 0 {
		return nil
	}
	lines := []string{"Version:"}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s=%s", k, meta[k]))
	}
	return lines
}
