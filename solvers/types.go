package solvers

// Suite map keys, also the names rendered in the report's solver-comparison
// section (which sorts lexicographically).
const (
	NameAnneal = "anneal"
	NameBrute  = "brute"
	NameGreedy = "greedy"
)

// DefaultMaxBruteStates caps brute-force enumeration at 2^12 assignments
// when the caller does not choose a bound.
const DefaultMaxBruteStates = 4096

// Options configures a suite run. The zero value is usable: seed 0 and the
// default brute-force cap.
type Options struct {
	// Seed drives any randomized solver. Threaded explicitly so reproducibility
	// never depends on hidden process-wide state or prior calls.
	Seed int64
	// MaxBruteStates is the largest 2^n the brute-force solver will scan;
	// 0 or negative selects DefaultMaxBruteStates.
	MaxBruteStates int
}

func (o Options) maxBruteStates() int {
	if o.MaxBruteStates <= 0 {
		return DefaultMaxBruteStates
	}
	return o.MaxBruteStates
}
