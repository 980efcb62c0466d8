package solvers

import (
	"github.com/qubolab/qverify/feasibility"
	"github.com/qubolab/qverify/objective"
	"github.com/qubolab/qverify/qubo"
)

// maxEnumerableVars bounds the shift below; beyond it 2^n overflows int and
// could never fit under any realistic cap anyway.
const maxEnumerableVars = 62

// Brute enumerates all 2^n assignments in binary-counting order over the
// variable list (first declared variable = most significant bit) and returns
// the minimum feasible objective total.
//
// It returns nil in two cases the report renders identically as "skipped":
// 2^n exceeds maxStates, or no assignment is feasible.
func Brute(problem *qubo.Problem, maxStates int) *float64 {
	n := len(problem.Variables)
	if n > maxEnumerableVars {
		return nil
	}
	total := 1 << uint(n)
	if total > maxStates {
		return nil
	}

	var best *float64
	assignment := make(map[string]int, n)
	for mask := 0; mask < total; mask++ {
		for i, v := range problem.Variables {
			assignment[v] = (mask >> uint(n-1-i)) & 1
		}
		if feasibility.Evaluate(problem.Constraints, assignment).Status != qubo.StatusFeasible {
			continue
		}
		sol := &qubo.Solution{Assignment: assignment, Label: "brute"}
		obj := objective.Evaluate(problem, sol).Total
		if best == nil || obj < *best {
			v := obj
			best = &v
		}
	}
	return best
}
