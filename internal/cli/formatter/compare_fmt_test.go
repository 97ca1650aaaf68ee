package formatter

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/engine"
	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatComparison(t *testing.T) {
	short := model.DefaultSettings()
	short.StockLength = 3000
	scenarios := []engine.ComparisonScenario{
		{Name: "Current Settings", Settings: model.DefaultSettings()},
		{Name: "Short stock", Settings: short},
	}
	entries := []model.Requirement{
		model.NewRequirement(1, 4190, "C7"),
		model.NewRequirement(4, 900, "SP1"),
	}
	results := engine.CompareScenarios(scenarios, entries)
	best := engine.BestScenario(results)

	out := FormatComparison(results, best)

	assert.Contains(t, out, "SCENARIO COMPARISON")
	assert.Contains(t, out, "* Current Settings")
	assert.Contains(t, out, "pieces too long")
	assert.NotContains(t, out, "No scenario can cut every piece.")
}

func TestFormatComparison_NoneFeasible(t *testing.T) {
	settings := model.DefaultSettings()
	results := engine.CompareScenarios(
		[]engine.ComparisonScenario{{Name: "Only", Settings: settings}},
		[]model.Requirement{model.NewRequirement(1, 9000, "Beam")},
	)

	out := FormatComparison(results, engine.BestScenario(results))

	assert.Contains(t, out, "No scenario can cut every piece.")
}

func TestFormatComparison_InvalidSettingsNothingCut(t *testing.T) {
	results := engine.CompareScenarios(
		[]engine.ComparisonScenario{
			{Name: "Zero stock", Settings: model.Settings{StockLength: 0, Kerf: 3}},
			{Name: "Current Settings", Settings: model.DefaultSettings()},
		},
		[]model.Requirement{model.NewRequirement(3, 600, "A")},
	)

	out := FormatComparison(results, engine.BestScenario(results))

	assert.Contains(t, out, "nothing cut")
	assert.NotContains(t, out, "pieces too long")
	assert.Contains(t, out, "* Current Settings")
	assert.NotContains(t, out, "* Zero stock")
}

func TestFormatConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.CompanyName = "Maestranza Sur"
	cfg.RecentExports = []string{"/tmp/shed.pdf"}

	out := FormatConfig("/home/u/.barcut/config.json", cfg)

	assert.Contains(t, out, "/home/u/.barcut/config.json")
	assert.Contains(t, out, "Maestranza Sur")
	assert.Contains(t, out, "12m")
	assert.Contains(t, out, "/tmp/shed.pdf")
}
