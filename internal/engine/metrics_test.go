package engine

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics_NoBars(t *testing.T) {
	m := CalculateMetrics(nil, 6000)

	assert.Equal(t, model.Metrics{}, m)
}

func TestCalculateMetrics_SingleBar(t *testing.T) {
	settings := testSettings(6000, 3)
	bars := New(settings).Solve(buildPieces(t, settings, req(1, 4190, "C7"), req(6, 265, "SP1")))

	m := CalculateMetrics(bars, settings.StockLength)

	assert.Equal(t, 1, m.TotalBars)
	assert.Equal(t, 7, m.TotalCuts)
	assert.Equal(t, 6000.0, m.StockLengthTotal)
	assert.InDelta(t, 5780.0, m.UsedLengthTotal, 1e-9)
	assert.InDelta(t, 199.0, m.FreeLengthTotal, 1e-9)
	assert.InDelta(t, 220.0, m.WasteLengthTotal, 1e-9)
	assert.InDelta(t, 21.0, m.KerfLossTotal, 1e-9)
	assert.InDelta(t, 220.0/6000.0*100, m.WastePercent, 1e-9)
	assert.InDelta(t, 199.0/6000.0*100, m.FreePercent, 1e-9)
	assert.InDelta(t, 5780.0/6000.0*100, m.Efficiency, 1e-9)
}

func TestCalculateMetrics_Identities(t *testing.T) {
	settings := testSettings(6000, 4)
	pieces := buildPieces(t, settings,
		req(5, 2210, "Post"),
		req(13, 975, "Rail"),
		req(21, 310.5, "Tab"),
	)
	bars := New(settings).Solve(pieces)

	m := CalculateMetrics(bars, settings.StockLength)

	require.Equal(t, len(bars), m.TotalBars)
	assert.InDelta(t, m.StockLengthTotal-m.UsedLengthTotal, m.WasteLengthTotal, 1e-9)
	assert.GreaterOrEqual(t, m.WasteLengthTotal, m.FreeLengthTotal)
	assert.InDelta(t, float64(len(pieces))*settings.Kerf, m.KerfLossTotal, 1e-6)
	assert.InDelta(t, 100.0, m.Efficiency+m.WastePercent, 1e-9)
}
