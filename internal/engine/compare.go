package engine

import (
	"fmt"

	"github.com/piwi3910/BarCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the solution and headline figures for one scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Solution      model.Solution
	Rejected      []*model.RequirementError
	BarsUsed      int
	PatternCount  int
	WastePercent  float64
	CostEstimate  float64
	RejectedCount int
	Entries       int
}

// Feasible reports whether the scenario produced a solution: no piece was too
// long and a non-empty cut list yielded at least one bar.
func (r ComparisonResult) Feasible() bool {
	if HasPieceTooLong(r.Rejected) {
		return false
	}
	return r.Entries == 0 || r.BarsUsed > 0
}

// CompareScenarios solves the same cut list once per scenario, in scenario order.
// Every scenario is an independent solve.
func CompareScenarios(scenarios []ComparisonScenario, entries []model.Requirement) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		sol, rejected := Run(scenario.Name, scenario.Settings, entries)
		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Solution:      sol,
			Rejected:      rejected,
			BarsUsed:      sol.Metrics.TotalBars,
			PatternCount:  len(sol.Patterns),
			WastePercent:  sol.Metrics.WastePercent,
			CostEstimate:  sol.Purchase.EstimatedCost,
			RejectedCount: len(rejected),
			Entries:       len(entries),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives to the base settings:
// each configured stock preset and a blade with half the kerf.
func BuildDefaultScenarios(base model.Settings, presets []model.StockPreset) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	for _, p := range presets {
		if p.Length <= 0 || p.Length == base.StockLength {
			continue
		}
		alt := base
		alt.StockLength = p.Length
		if p.Kerf > 0 {
			alt.Kerf = p.Kerf
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Stock %s (%.0f mm)", p.Name, p.Length),
			Settings: alt,
		})
	}

	// Thinner blade
	if base.Kerf > 1.0 {
		thin := base
		thin.Kerf = base.Kerf * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Kerf %.1fmm (half)", thin.Kerf),
			Settings: thin,
		})
	}

	return scenarios
}

// BestScenario returns the index of the feasible result wasting the least
// material, then using the fewest bars. It returns -1 when no scenario is feasible.
func BestScenario(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if !r.Feasible() {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		rw := r.Solution.Metrics.WasteLengthTotal
		bw := results[best].Solution.Metrics.WasteLengthTotal
		if rw < bw || (rw == bw && r.BarsUsed < results[best].BarsUsed) {
			best = i
		}
	}
	return best
}
