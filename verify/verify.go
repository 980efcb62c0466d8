// Package verify orchestrates one verification run over a validated
// Problem/Solution pair and maps outcomes to process exit codes.
//
// Stage order is fixed: feasibility and objective always run; the gap needs
// only the objective total and the problem's best-known record; sensitivity
// runs only from a feasible base; the solver suite is optional and
// independent of the candidate. Parse failures never reach this package;
// callers halt on them first (exit code 2).
package verify

import (
	"github.com/qubolab/qverify/compare"
	"github.com/qubolab/qverify/feasibility"
	"github.com/qubolab/qverify/objective"
	"github.com/qubolab/qverify/qubo"
	"github.com/qubolab/qverify/sensitivity"
	"github.com/qubolab/qverify/solvers"
)

// Process exit codes. Infeasibility is a first-class result, not an error,
// but the CLI still distinguishes it from success and from inputs that could
// not be evaluated at all.
const (
	ExitFeasible   = 0
	ExitInfeasible = 1
	ExitError      = 2
)

// Options selects the optional stages of a run.
type Options struct {
	// CompareSolvers enables the reference-solver suite.
	CompareSolvers bool
	// MaxBruteStates bounds brute-force enumeration; 0 selects the solver
	// package default.
	MaxBruteStates int
	// Seed is threaded into the solver suite.
	Seed int64
}

// Run executes a full verification of solution against problem. Both inputs
// are treated as immutable; every result in the returned RunResult is freshly
// computed, so concurrent runs over a shared Problem need no locking.
func Run(problem *qubo.Problem, solution *qubo.Solution, opts Options) qubo.RunResult {
	feas := feasibility.Evaluate(problem.Constraints, solution.Assignment)
	obj := objective.Evaluate(problem, solution)
	gap := compare.Gap(obj.Total, problem.BestKnown)

	var sens []qubo.SensitivityEntry
	if feas.Status == qubo.StatusFeasible {
		sens = sensitivity.Analyze(problem, solution, obj.Total)
	}

	comparison := map[string]*float64{}
	if opts.CompareSolvers {
		comparison = solvers.RunSuite(problem, solvers.Options{
			Seed:           opts.Seed,
			MaxBruteStates: opts.MaxBruteStates,
		})
	}

	return qubo.RunResult{
		Feasibility: feas,
		Objective:   &obj,
		Gap:         gap,
		BestKnown:   problem.BestKnown,
		Sensitivity: sens,
		Solvers:     comparison,
	}
}

// ExitCode maps an aggregate feasibility status to the CLI contract:
// feasible 0, infeasible 1, anything else 2.
func ExitCode(status qubo.Status) int {
	switch status {
	case qubo.StatusFeasible:
		return ExitFeasible
	case qubo.StatusInfeasible:
		return ExitInfeasible
	}
	return ExitError
}
