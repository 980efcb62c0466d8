// Package sensitivity scans the single-bit-flip neighborhood of a feasible
// base solution.
//
// For every variable, one neighbor is synthesized by copying the base
// assignment and flipping that variable's bit; feasibility and objective are
// recomputed from scratch. The output order (ascending |delta|, ties broken
// by variable id) is a contract, not an accident: it fixes the byte order of
// the rendered report.
package sensitivity

import (
	"math"
	"sort"

	"github.com/qubolab/qverify/feasibility"
	"github.com/qubolab/qverify/objective"
	"github.com/qubolab/qverify/qubo"
)

// Analyze evaluates every one-bit neighbor of base. baseTotal is the base
// solution's objective total; callers pass it in so the base is scored once.
// Only run this on a feasible base; the orchestrator skips it otherwise.
func Analyze(problem *qubo.Problem, base *qubo.Solution, baseTotal float64) []qubo.SensitivityEntry {
	entries := make([]qubo.SensitivityEntry, 0, len(problem.Variables))
	for _, v := range problem.Variables {
		flipped := base.CloneAssignment()
		flipped[v] = 1 - flipped[v]
		neighbor := &qubo.Solution{Assignment: flipped, Label: base.Label + "-flip-" + v}

		feas := feasibility.Evaluate(problem.Constraints, neighbor.Assignment)
		obj := objective.Evaluate(problem, neighbor)
		entries = append(entries, qubo.SensitivityEntry{
			Var:               v,
			Delta:             obj.Total - baseTotal,
			FeasibleAfterFlip: feas.Status == qubo.StatusFeasible,
		})
	}

	sort.Slice(entries, func(a, b int) bool {
		da, db := math.Abs(entries[a].Delta), math.Abs(entries[b].Delta)
		if da != db {
			return da < db
		}
		return entries[a].Var < entries[b].Var
	})
	return entries
}
