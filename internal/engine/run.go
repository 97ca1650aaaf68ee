package engine

import (
	"errors"

	"github.com/piwi3910/BarCut/internal/model"
)

// Run validates the cut list, solves it and builds the report data.
//
// Entries rejected as invalid are skipped and returned. If any entry is
// rejected because it cannot fit on a bar, nothing is solved and the returned
// solution is empty: the cut list has to be fixed first.
func Run(name string, settings model.Settings, entries []model.Requirement) (model.Solution, []*model.RequirementError) {
	sol := model.NewSolution(name, settings)

	b := NewBuilder(settings)
	rejected := b.AddAll(entries)
	if HasPieceTooLong(rejected) || b.Len() == 0 {
		return sol, rejected
	}

	bars := New(settings).Solve(b.Pieces())
	sol.Bars = bars
	sol.Patterns = Aggregate(bars)
	sol.Metrics = CalculateMetrics(bars, settings.StockLength)
	sol.Pieces = SummarizePieces(sol.Patterns)
	sol.Offcuts = model.DetectOffcuts(bars, settings.MinOffcutLength)
	sol.Purchase = model.CalculatePurchaseEstimate(acceptedEntries(entries, rejected),
		settings.StockLength, settings.Kerf, len(bars), settings.PricePerBar)

	return sol, rejected
}

// HasPieceTooLong reports whether any rejection is a piece that cannot fit on a bar.
func HasPieceTooLong(rejected []*model.RequirementError) bool {
	for _, r := range rejected {
		if errors.Is(r, model.ErrPieceTooLong) {
			return true
		}
	}
	return false
}

func acceptedEntries(entries []model.Requirement, rejected []*model.RequirementError) []model.Requirement {
	if len(rejected) == 0 {
		return entries
	}
	skip := make(map[int]bool, len(rejected))
	for _, r := range rejected {
		skip[r.Index] = true
	}
	out := make([]model.Requirement, 0, len(entries)-len(rejected))
	for i, e := range entries {
		if !skip[i] {
			out = append(out, e)
		}
	}
	return out
}
