// Package compare relates a candidate objective to a recorded best-known
// value.
package compare

import (
	"math"

	"github.com/qubolab/qverify/qubo"
)

// Gap returns the normalized percentage gap of candidate against best:
// (candidate - best) / |best| * 100. It is undefined (nil) when no best-known
// value is recorded, or when |best| <= qubo.Tol: near-zero references would
// turn the division into noise, so the comparator declines rather than
// erroring.
func Gap(candidate float64, best *qubo.BestKnown) *float64 {
	if best == nil {
		return nil
	}
	if math.Abs(best.Value) <= qubo.Tol {
		return nil
	}
	gap := (candidate - best.Value) / math.Abs(best.Value) * 100
	return &gap
}
