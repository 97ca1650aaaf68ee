package engine

import "github.com/piwi3910/BarCut/internal/model"

// CalculateMetrics derives utilization and waste figures from solved bars.
// Waste covers both the free remnants and the kerf lost to the blade.
func CalculateMetrics(bars []model.Bar, stockLength float64) model.Metrics {
	m := model.Metrics{TotalBars: len(bars)}
	m.StockLengthTotal = float64(len(bars)) * stockLength

	for _, b := range bars {
		m.TotalCuts += len(b.Cuts)
		m.UsedLengthTotal += b.UsedLength()
		m.FreeLengthTotal += b.Free
	}

	m.WasteLengthTotal = m.StockLengthTotal - m.UsedLengthTotal
	m.KerfLossTotal = m.WasteLengthTotal - m.FreeLengthTotal

	if m.StockLengthTotal == 0 {
		return m
	}
	m.WastePercent = m.WasteLengthTotal / m.StockLengthTotal * 100.0
	m.FreePercent = m.FreeLengthTotal / m.StockLengthTotal * 100.0
	m.Efficiency = m.UsedLengthTotal / m.StockLengthTotal * 100.0
	return m
}
