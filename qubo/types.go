package qubo

// Tol is the absolute numeric tolerance used by every comparison in the
// engine: constraint satisfaction, binding detection, and the near-zero guard
// in gap computation. All tests are absolute, never relative.
const Tol = 1e-9

// ConstraintType tags a Constraint with its evaluation rule. The set is
// closed: parse rejects anything else, so evaluators may switch exhaustively.
type ConstraintType string

const (
	// LinearEq requires |lhs - rhs| <= Tol.
	LinearEq ConstraintType = "linear_eq"
	// LinearIneq requires lhs - rhs <= Tol.
	LinearIneq ConstraintType = "linear_ineq"
	// AtMostK requires lhs - rhs <= Tol; same rule as LinearIneq, kept as a
	// distinct tag because documents declare cardinality caps explicitly.
	AtMostK ConstraintType = "at_most_k"
	// XOR requires |lhs - 1| <= Tol, i.e. exactly one of the referenced bits
	// set (for unit coefficients).
	XOR ConstraintType = "xor"
)

// Valid reports whether t is one of the four recognized tags.
func (t ConstraintType) Valid() bool {
	switch t {
	case LinearEq, LinearIneq, AtMostK, XOR:
		return true
	}
	return false
}

// Constraint is a single restriction on an assignment: a weighted sum over
// variables compared against RHS under the rule selected by Type.
type Constraint struct {
	// Label identifies the constraint in violation and binding lists.
	// Unlabeled constraints get "c<index>" at parse time.
	Label string
	Type  ConstraintType
	// LHS maps variable id -> coefficient. Only variables declared by the
	// owning Problem may appear (enforced at parse time).
	LHS map[string]float64
	RHS float64
}

// VarPair is an unordered variable pair normalized so that I <= J
// lexicographically. Always build one through NewVarPair.
type VarPair struct {
	I, J string
}

// NewVarPair normalizes (a, b) into canonical order. a == b is allowed and
// represents a squared term (which equals the plain term for 0/1 variables).
func NewVarPair(a, b string) VarPair {
	if b < a {
		a, b = b, a
	}
	return VarPair{I: a, J: b}
}

// BestKnown records the best objective value known for a Problem, with a
// label for reporting.
type BestKnown struct {
	Value float64
	Label string
}

// Problem is the immutable aggregate a verification run evaluates against.
//
// Invariant (enforced by package parse, assumed everywhere else): every
// variable referenced by Linear, Quadratic or any Constraint appears in
// Variables, and Variables contains no duplicates.
type Problem struct {
	// Variables in declaration order. This order drives the greedy solver's
	// single pass and the bit order of brute-force enumeration.
	Variables []string
	// Linear maps variable id -> linear coefficient.
	Linear map[string]float64
	// Quadratic maps a normalized pair -> coefficient. Duplicate pairs (in
	// either order) are a parse error, never summed.
	Quadratic map[VarPair]float64
	// Constraints in declaration order; violation and binding lists preserve
	// this order.
	Constraints []Constraint
	// BestKnown is nil when the document records no reference value.
	BestKnown *BestKnown
	Metadata  map[string]string
}

// Solution is a complete candidate assignment for a Problem: exactly one 0/1
// value per declared variable, no extras.
type Solution struct {
	Assignment map[string]int
	Label      string
	Metadata   map[string]string
}

// CloneAssignment returns a fresh copy of the assignment map, for callers
// that synthesize neighboring solutions by flipping bits. The receiver is
// never mutated.
func (s *Solution) CloneAssignment() map[string]int {
	out := make(map[string]int, len(s.Assignment))
	for k, v := range s.Assignment {
		out[k] = v
	}
	return out
}
