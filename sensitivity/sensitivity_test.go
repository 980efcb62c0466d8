package sensitivity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qverify/objective"
	"github.com/qubolab/qverify/qubo"
	"github.com/qubolab/qverify/sensitivity"
)

// TestAnalyze_OneEntryPerVariable: every declared variable gets exactly one
// entry, whatever the constraint landscape looks like.
func TestAnalyze_OneEntryPerVariable(t *testing.T) {
	p := &qubo.Problem{
		Variables: []string{"a", "b", "c"},
		Linear:    map[string]float64{"a": 1, "b": -2, "c": 3},
	}
	base := &qubo.Solution{Assignment: map[string]int{"a": 0, "b": 1, "c": 0}, Label: "base"}
	baseTotal := objective.Evaluate(p, base).Total

	entries := sensitivity.Analyze(p, base, baseTotal)
	require.Len(t, entries, 3)
	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.Var] = true
	}
	assert.Len(t, seen, 3)
}

// TestAnalyze_DeltasAndFeasibility checks signed deltas and the feasibility
// flag of each one-bit neighbor.
func TestAnalyze_DeltasAndFeasibility(t *testing.T) {
	p := &qubo.Problem{
		Variables: []string{"a", "b"},
		Linear:    map[string]float64{"a": 1, "b": 2},
		Constraints: []qubo.Constraint{
			{Label: "one_of", Type: qubo.LinearEq, LHS: map[string]float64{"a": 1, "b": 1}, RHS: 1},
		},
	}
	base := &qubo.Solution{Assignment: map[string]int{"a": 1, "b": 0}, Label: "base"}
	baseTotal := objective.Evaluate(p, base).Total

	entries := sensitivity.Analyze(p, base, baseTotal)
	require.Len(t, entries, 2)

	// Flipping a drops it to all-zero: delta -1, equality broken.
	// Flipping b sets both bits: delta +2, equality broken.
	byVar := map[string]qubo.SensitivityEntry{}
	for _, e := range entries {
		byVar[e.Var] = e
	}
	assert.Equal(t, -1.0, byVar["a"].Delta)
	assert.False(t, byVar["a"].FeasibleAfterFlip)
	assert.Equal(t, 2.0, byVar["b"].Delta)
	assert.False(t, byVar["b"].FeasibleAfterFlip)
}

// TestAnalyze_Ordering: entries sort by |delta| ascending with variable id
// breaking ties.
func TestAnalyze_Ordering(t *testing.T) {
	p := &qubo.Problem{
		Variables: []string{"d", "c", "b", "a"},
		Linear:    map[string]float64{"d": 3, "c": -1, "b": 1, "a": 2},
	}
	base := &qubo.Solution{Assignment: map[string]int{"a": 0, "b": 0, "c": 0, "d": 0}, Label: "base"}

	entries := sensitivity.Analyze(p, base, 0)
	require.Len(t, entries, 4)
	assert.Equal(t, "b", entries[0].Var, "|1| ties break on id: b before c")
	assert.Equal(t, "c", entries[1].Var)
	assert.Equal(t, "a", entries[2].Var)
	assert.Equal(t, "d", entries[3].Var)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, math.Abs(entries[i-1].Delta), math.Abs(entries[i].Delta))
	}
}

// TestAnalyze_DoesNotMutateBase: the scan must leave the base assignment
// untouched.
func TestAnalyze_DoesNotMutateBase(t *testing.T) {
	p := &qubo.Problem{Variables: []string{"a", "b"}, Linear: map[string]float64{"a": 1}}
	base := &qubo.Solution{Assignment: map[string]int{"a": 1, "b": 0}, Label: "base"}

	sensitivity.Analyze(p, base, 1)
	assert.Equal(t, map[string]int{"a": 1, "b": 0}, base.Assignment)
}
