package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/BarCut/internal/engine"
)

// FormatComparison renders one row per scenario and marks the best one.
func FormatComparison(results []engine.ComparisonResult, best int) string {
	var b strings.Builder
	b.WriteString(Header("Scenario comparison"))
	b.WriteString("\n")

	rows := make([][]string, len(results))
	for i, r := range results {
		name := r.Scenario.Name
		if i == best {
			name = StyleGreen.Render("* " + name)
		}
		if !r.Feasible() {
			reason := "nothing cut"
			if engine.HasPieceTooLong(r.Rejected) {
				reason = "pieces too long"
			}
			rows[i] = []string{name, mm(r.Scenario.Settings.StockLength), mm(r.Scenario.Settings.Kerf),
				StyleRed.Render(reason), "", "", "", strconv.Itoa(r.RejectedCount)}
			continue
		}
		cost := "-"
		if r.Scenario.Settings.PricePerBar > 0 {
			cost = fmt.Sprintf("%.2f", r.CostEstimate)
		}
		rows[i] = []string{
			name,
			mm(r.Scenario.Settings.StockLength),
			mm(r.Scenario.Settings.Kerf),
			strconv.Itoa(r.BarsUsed),
			strconv.Itoa(r.PatternCount),
			fmt.Sprintf("%.2f%%", r.WastePercent),
			cost,
			strconv.Itoa(r.RejectedCount),
		}
	}
	b.WriteString(RenderTable(
		[]string{"Scenario", "Stock", "Kerf", "Bars", "Patterns", "Waste", "Cost", "Rejected"}, rows))

	if best < 0 {
		b.WriteString(StyleRed.Render("No scenario can cut every piece."))
		b.WriteString("\n")
	}
	return b.String()
}
