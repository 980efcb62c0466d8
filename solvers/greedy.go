package solvers

import (
	"github.com/qubolab/qverify/feasibility"
	"github.com/qubolab/qverify/objective"
	"github.com/qubolab/qverify/qubo"
)

// Greedy runs a single local-improvement pass from the all-zero assignment.
//
// Variables are visited in declaration order, exactly once, no backtracking.
// Each visit tentatively sets the bit to 1; the flip is kept iff the flipped
// assignment is feasible AND strictly lowers the objective total versus the
// pre-flip assignment. The final assignment's objective total is returned
// even when that assignment itself is infeasible (an all-zero start violating
// an equality constraint, say, with no improving flip available).
func Greedy(problem *qubo.Problem) float64 {
	assignment := make(map[string]int, len(problem.Variables))
	for _, v := range problem.Variables {
		assignment[v] = 0
	}

	for _, v := range problem.Variables {
		current := &qubo.Solution{Assignment: assignment, Label: "greedy-current"}
		currentTotal := objective.Evaluate(problem, current).Total

		flipped := current.CloneAssignment()
		flipped[v] = 1
		candidate := &qubo.Solution{Assignment: flipped, Label: "greedy-flip"}
		if feasibility.Evaluate(problem.Constraints, candidate.Assignment).Status != qubo.StatusFeasible {
			continue
		}
		if objective.Evaluate(problem, candidate).Total < currentTotal {
			assignment = flipped
		}
	}

	final := &qubo.Solution{Assignment: assignment, Label: "greedy-final"}
	return objective.Evaluate(problem, final).Total
}
