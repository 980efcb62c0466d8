// Package objective computes the linear + quadratic score of an assignment.
package objective

import (
	"sort"

	"github.com/qubolab/qverify/qubo"
)

// Evaluate computes the objective decomposition for solution against problem.
// Pure function: safe to call repeatedly with synthetic assignments (the
// sensitivity analyzer and solvers do exactly that).
//
// Summation orders are fixed (declaration order for linear terms, sorted
// pair order for quadratic terms) so float totals are reproducible.
func Evaluate(problem *qubo.Problem, solution *qubo.Solution) qubo.ObjectiveResult {
	assignment := solution.Assignment

	linear := 0.0
	for _, v := range problem.Variables {
		linear += problem.Linear[v] * float64(assignment[v])
	}

	pairs := make([]qubo.VarPair, 0, len(problem.Quadratic))
	for p := range problem.Quadratic {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})

	quadratic := 0.0
	for _, p := range pairs {
		// 0/1 bits: the product contributes only when both are set.
		quadratic += problem.Quadratic[p] * float64(assignment[p.I]) * float64(assignment[p.J])
	}

	return qubo.ObjectiveResult{
		LinearValue:    linear,
		QuadraticValue: quadratic,
		Total:          linear + quadratic,
	}
}
