package engine

import (
	"sort"

	"github.com/piwi3910/BarCut/internal/model"
)

// Solver runs the 1D best-fit decreasing heuristic. It only holds its
// settings, so one Solver can serve any number of independent solves.
type Solver struct {
	Settings model.Settings
}

func New(settings model.Settings) *Solver {
	return &Solver{Settings: settings}
}

// Solve assigns every piece to a bar and returns the bars in creation order.
// Pieces are expected to have passed Builder validation.
func (s *Solver) Solve(pieces []model.Piece) []model.Bar {
	bars := []model.Bar{}
	if len(pieces) == 0 {
		return bars
	}

	// Longest first; equal lengths keep their insertion order.
	sorted := make([]model.Piece, len(pieces))
	copy(sorted, pieces)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length > sorted[j].Length
	})

	kerf := s.Settings.Kerf
	for _, p := range sorted {
		consumption := p.Length + kerf
		cut := model.Cut{Length: p.Length, Label: p.Label}

		if idx := bestFit(bars, consumption); idx >= 0 {
			bars[idx].Cuts = append(bars[idx].Cuts, cut)
			bars[idx].Free -= consumption
			continue
		}

		bars = append(bars, model.Bar{
			Cuts: []model.Cut{cut},
			Free: s.Settings.StockLength - consumption,
		})
	}

	return bars
}

// bestFit returns the index of the bar left with the smallest remainder after
// taking consumption, or -1 if none has room. The earliest bar wins ties.
func bestFit(bars []model.Bar, consumption float64) int {
	best := -1
	var bestLeft float64
	for i, b := range bars {
		if b.Free < consumption {
			continue
		}
		left := b.Free - consumption
		if best == -1 || left < bestLeft {
			best = i
			bestLeft = left
		}
	}
	return best
}
