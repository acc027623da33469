package gridmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoverageOptionalHasNoPenalty(t *testing.T) {
	c := Optional()
	require.Equal(t, 0, c.MandatoryCount())
	require.Equal(t, float64(0), c.OpportunityLoss(0))
}

func TestCoverageSimpleIsSingleMandatory(t *testing.T) {
	c := Simple()
	require.Equal(t, 1, c.MandatoryCount())
	require.True(t, math.IsInf(c.OpportunityLoss(0), 1))
	require.Equal(t, float64(0), c.OpportunityLoss(1))
}

func TestCoverageRepeatedMandatory(t *testing.T) {
	c := Repeated(3)
	require.Equal(t, 3, c.MandatoryCount())
	require.True(t, math.IsInf(c.OpportunityLoss(2), 1))
	require.Equal(t, float64(0), c.OpportunityLoss(3))
}

func TestCoverageValidateRejectsNonMonotone(t *testing.T) {
	c := Coverage{3, 5}
	require.ErrorIs(t, c.Validate(), ErrNonMonotonePenalty)

	c = Coverage{5, 3, 1}
	require.NoError(t, c.Validate())
}

func TestCoverageOpportunityLossIsNonIncreasing(t *testing.T) {
	c := Coverage{10, 6, 2}
	require.NoError(t, c.Validate())
	prev := math.Inf(1)
	for k := 0; k <= 4; k++ {
		loss := c.OpportunityLoss(k)
		require.LessOrEqual(t, loss, prev)
		prev = loss
	}
	require.Equal(t, float64(0), c.OpportunityLoss(3))
	require.Equal(t, float64(0), c.OpportunityLoss(10))
}

func TestCoveragePenaltyVariableEntriesExcludesMandatoryAndExpensive(t *testing.T) {
	c := Coverage{math.Inf(1), 9, 4, 1}
	entries := c.PenaltyVariableEntries(5)
	require.Equal(t, []PenaltyEntry{
		{Index: 3, Penalty: 4},
		{Index: 4, Penalty: 1},
	}, entries, "mandatory entry at index 1 and the entry at/above cheapestCycleCost are both excluded")
}

func TestCoveragePenaltyVariableEntriesEmptyWhenNothingWorthCovering(t *testing.T) {
	c := Coverage{2, 1}
	require.Empty(t, c.PenaltyVariableEntries(0.5))
}
