// Package feasibility evaluates constraints against a 0/1 assignment and
// classifies each as satisfied, violated or binding.
//
// All comparisons use the absolute tolerance qubo.Tol. Violation and binding
// lists preserve constraint declaration order; constraints are independent of
// one another in every other respect.
package feasibility

import (
	"math"
	"sort"

	"github.com/qubolab/qverify/qubo"
)

// lhsValue computes the weighted sum of c's terms under the assignment.
// Terms are accumulated in sorted variable order so the float total is
// reproducible run to run. Missing assignment entries count as 0; the parse
// layer's completeness guarantee means that branch is never taken for a
// validated Solution.
func lhsValue(lhs map[string]float64, assignment map[string]int) float64 {
	ids := make([]string, 0, len(lhs))
	for id := range lhs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	total := 0.0
	for _, id := range ids {
		total += lhs[id] * float64(assignment[id])
	}
	return total
}

// EvaluateConstraint applies c's rule to the assignment and returns
// (satisfied, violation magnitude, binding). The magnitude is 0 when
// satisfied. An unrecognized type, impossible for a parsed Problem, counts
// as unsatisfied with infinite violation.
func EvaluateConstraint(c qubo.Constraint, assignment map[string]int) (satisfied bool, violation float64, binding bool) {
	lhs := lhsValue(c.LHS, assignment)
	switch c.Type {
	case qubo.LinearEq:
		diff := math.Abs(lhs - c.RHS)
		satisfied = diff <= qubo.Tol
		// An equality has zero slack whenever it holds.
		binding = satisfied
		if !satisfied {
			violation = diff
		}
	case qubo.LinearIneq, qubo.AtMostK:
		diff := lhs - c.RHS
		satisfied = diff <= qubo.Tol
		binding = math.Abs(diff) <= qubo.Tol
		if !satisfied {
			violation = diff
		}
	case qubo.XOR:
		diff := math.Abs(lhs - 1)
		satisfied = diff <= qubo.Tol
		binding = satisfied
		if !satisfied {
			violation = diff
		}
	default:
		return false, math.Inf(1), false
	}
	return satisfied, violation, binding
}

// Evaluate runs every constraint against the assignment. The aggregate
// status is infeasible iff at least one constraint is unsatisfied.
func Evaluate(constraints []qubo.Constraint, assignment map[string]int) qubo.FeasibilityResult {
	var (
		violations []qubo.Violation
		binding    []string
	)
	for _, c := range constraints {
		satisfied, violation, bind := EvaluateConstraint(c, assignment)
		if !satisfied {
			violations = append(violations, qubo.Violation{Label: c.Label, Amount: violation})
		} else if bind {
			binding = append(binding, c.Label)
		}
	}
	status := qubo.StatusFeasible
	if len(violations) > 0 {
		status = qubo.StatusInfeasible
	}
	return qubo.FeasibilityResult{Status: status, Violations: violations, Binding: binding}
}
