package qubo

// Status is the aggregate outcome of a feasibility check.
type Status string

const (
	StatusFeasible   Status = "feasible"
	StatusInfeasible Status = "infeasible"
	// StatusUnknown is reserved for constraint types the evaluator does not
	// recognize. Post-validation this cannot occur; the aggregate status of a
	// run is always feasible or infeasible.
	StatusUnknown Status = "unknown"
)

// ObjectiveResult decomposes an assignment's objective value. Total is always
// exactly LinearValue + QuadraticValue; results are recomputed per
// assignment, never cached.
type ObjectiveResult struct {
	LinearValue    float64
	QuadraticValue float64
	Total          float64
}

// Violation pairs an unsatisfied constraint's label with its violation
// magnitude. Satisfied constraints never appear in a violations list.
type Violation struct {
	Label  string
	Amount float64
}

// FeasibilityResult aggregates the per-constraint evaluation of one
// assignment. Violations and Binding preserve constraint declaration order.
type FeasibilityResult struct {
	Status     Status
	Violations []Violation
	Binding    []string
}

// SensitivityEntry records the effect of flipping a single variable's bit:
// the signed objective delta and whether the neighbor stays feasible.
type SensitivityEntry struct {
	Var               string
	Delta             float64
	FeasibleAfterFlip bool
}

// RunResult bundles everything one verification run produced. Optional parts
// are nil when the corresponding stage did not run or had nothing to say:
// Gap when no usable best-known value exists, Solvers entries when a solver
// was skipped or found no feasible assignment.
type RunResult struct {
	Feasibility FeasibilityResult
	Objective   *ObjectiveResult
	Gap         *float64
	BestKnown   *BestKnown
	Sensitivity []SensitivityEntry
	Solvers     map[string]*float64
}
