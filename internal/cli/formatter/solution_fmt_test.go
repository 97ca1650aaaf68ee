package formatter

import (
	"errors"
	"testing"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveForTest(t *testing.T, settings model.Settings) model.Solution {
	t.Helper()
	sol, rejected := engine.Run("Shed", settings, []model.Requirement{
		model.NewRequirement(1, 4190, "C7"),
		model.NewRequirement(6, 265, "SP1"),
		model.NewRequirement(2, 2000, "Post"),
	})
	require.Empty(t, rejected)
	return sol
}

func TestFormatSolution(t *testing.T) {
	settings := model.DefaultSettings()
	settings.PricePerBar = 40
	sol := solveForTest(t, settings)

	out := FormatSolution(sol)

	assert.Contains(t, out, "SHED")
	assert.Contains(t, out, "Stock 6000 mm")
	assert.Contains(t, out, "METRICS")
	assert.Contains(t, out, "PATTERNS")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "C7 4190")
	assert.Contains(t, out, "PIECE SUMMARY")
	assert.Contains(t, out, "Bars needed:")
	assert.Contains(t, out, "Estimated cost:")
}

func TestFormatSolution_NoCostWithoutPrice(t *testing.T) {
	out := FormatSolution(solveForTest(t, model.DefaultSettings()))
	assert.NotContains(t, out, "Estimated cost:")
}

func TestFormatSolution_Empty(t *testing.T) {
	out := FormatSolution(model.NewSolution("", model.DefaultSettings()))
	assert.Contains(t, out, "UNTITLED")
	assert.Contains(t, out, "No pieces to cut.")
	assert.NotContains(t, out, "METRICS")
}

func TestFormatSolution_Offcuts(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MinOffcutLength = 100
	sol := solveForTest(t, settings)
	require.NotEmpty(t, sol.Offcuts)

	assert.Contains(t, FormatSolution(sol), "OFFCUTS")
}

func TestFormatRejected(t *testing.T) {
	assert.Empty(t, FormatRejected(nil))

	out := FormatRejected([]*model.RequirementError{
		{Index: 2, Label: "Beam", Length: 7000, Err: model.ErrPieceTooLong},
		{Index: 4, Err: errors.New("quantity must be at least 1")},
	})
	assert.Contains(t, out, "2 entries rejected")
	assert.Contains(t, out, "entry 3 (Beam)")
	assert.Contains(t, out, "entry 5: quantity must be at least 1")
}
