package engine

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	settings := testSettings(6000, 3)
	settings.MinOffcutLength = 150
	settings.PricePerBar = 42.5

	sol, rejected := Run("Main shed", settings, []model.Requirement{
		req(1, 4190, "C7"),
		req(6, 265, "SP1"),
	})

	assert.Empty(t, rejected)
	assert.Equal(t, "Main shed", sol.Name)
	assert.NotEmpty(t, sol.ID)
	require.Len(t, sol.Bars, 1)
	require.Len(t, sol.Patterns, 1)
	assert.Equal(t, 1, sol.Patterns[0].Count)
	assert.InDelta(t, 199.0, sol.Patterns[0].Free, 1e-9)
	assert.Equal(t, 1, sol.Metrics.TotalBars)

	require.Len(t, sol.Offcuts, 1)
	assert.Equal(t, 1, sol.Offcuts[0].BarIndex)
	assert.InDelta(t, 199.0, sol.Offcuts[0].Length, 1e-9)

	assert.Equal(t, 1, sol.Purchase.BarsLowerBound)
	assert.Equal(t, 1, sol.Purchase.BarsNeeded)
	assert.InDelta(t, 42.5, sol.Purchase.EstimatedCost, 1e-9)

	assert.Equal(t, []model.PieceSummary{
		{Label: "C7", Length: 4190, Quantity: 1},
		{Label: "SP1", Length: 265, Quantity: 6},
	}, sol.Pieces)
}

func TestRun_OverflowExample(t *testing.T) {
	sol, rejected := Run("", testSettings(1000, 3), []model.Requirement{req(3, 600, "A")})

	assert.Empty(t, rejected)
	assert.Equal(t, "Untitled", sol.Name)
	assert.Equal(t, 3, sol.Metrics.TotalBars)
	require.Len(t, sol.Patterns, 1)
	assert.Equal(t, 3, sol.Patterns[0].Count)
	for _, b := range sol.Bars {
		assert.InDelta(t, 397.0, b.Free, 1e-9)
	}
}

func TestRun_PieceTooLongStopsSolve(t *testing.T) {
	sol, rejected := Run("", testSettings(500, 3), []model.Requirement{
		req(2, 100, "OK"),
		req(1, 500, "X"),
	})

	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], model.ErrPieceTooLong)
	assert.True(t, HasPieceTooLong(rejected))
	assert.Empty(t, sol.Bars)
	assert.Empty(t, sol.Patterns)
	assert.Equal(t, 0, sol.Metrics.TotalBars)
}

func TestRun_InvalidEntriesAreSkipped(t *testing.T) {
	sol, rejected := Run("", testSettings(1000, 0), []model.Requirement{
		req(0, 100, "Zero"),
		req(2, 500, "A"),
		req(1, -4, "Negative"),
	})

	require.Len(t, rejected, 2)
	assert.False(t, HasPieceTooLong(rejected))
	assert.Equal(t, 1, sol.Metrics.TotalBars)
	assert.Equal(t, 1, sol.Purchase.BarsLowerBound)
	assert.InDelta(t, 1000.0, sol.Purchase.TotalConsumption, 1e-9)
}

func TestRun_NoValidEntriesYieldsEmptySolution(t *testing.T) {
	sol, rejected := Run("", testSettings(1000, 0), []model.Requirement{req(0, 100, "Zero")})

	require.Len(t, rejected, 1)
	assert.Empty(t, sol.Bars)
	assert.Empty(t, sol.Patterns)
	assert.Equal(t, 0.0, sol.Metrics.WastePercent)
	assert.Equal(t, 0.0, sol.Metrics.FreePercent)
}
