package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubolab/qverify/compare"
	"github.com/qubolab/qverify/qubo"
)

// TestGap_Percentage checks the normalized formula against hand-computed
// values, including a negative reference.
func TestGap_Percentage(t *testing.T) {
	gap := compare.Gap(12, &qubo.BestKnown{Value: 10})
	require.NotNil(t, gap)
	assert.InDelta(t, 20, *gap, 1e-12)

	gap = compare.Gap(10, &qubo.BestKnown{Value: 10})
	require.NotNil(t, gap)
	assert.Zero(t, *gap)

	// Negative best: |best| in the denominator keeps the sign meaningful.
	gap = compare.Gap(-8, &qubo.BestKnown{Value: -10})
	require.NotNil(t, gap)
	assert.InDelta(t, 20, *gap, 1e-12)
}

// TestGap_CandidateBelowBest yields a negative gap, not an error.
func TestGap_CandidateBelowBest(t *testing.T) {
	gap := compare.Gap(9, &qubo.BestKnown{Value: 10})
	require.NotNil(t, gap)
	assert.InDelta(t, -10, *gap, 1e-12)
}

// TestGap_Undefined covers the nil outcomes: missing reference and a
// near-zero reference inside tolerance.
func TestGap_Undefined(t *testing.T) {
	assert.Nil(t, compare.Gap(5, nil))
	assert.Nil(t, compare.Gap(5, &qubo.BestKnown{Value: 0}))
	assert.Nil(t, compare.Gap(5, &qubo.BestKnown{Value: qubo.Tol / 2}))
	assert.NotNil(t, compare.Gap(5, &qubo.BestKnown{Value: 2 * qubo.Tol}))
}
