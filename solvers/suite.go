package solvers

import "github.com/qubolab/qverify/qubo"

// RunSuite executes every reference solver against problem and returns the
// name -> outcome map consumed by the reporter. Entries are nil where the
// solver produced no value (brute force skipped or found nothing feasible).
// The suite never errors for a validated Problem.
func RunSuite(problem *qubo.Problem, opts Options) map[string]*float64 {
	greedy := Greedy(problem)
	anneal := Anneal(problem, opts.Seed)
	return map[string]*float64{
		NameGreedy: &greedy,
		NameBrute:  Brute(problem, opts.maxBruteStates()),
		NameAnneal: &anneal,
	}
}
