package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/BarCut/internal/model"
)

// previewWidth is the number of columns a full stock bar spans in previews.
const previewWidth = 48

// FormatSolution renders the full solve result: settings, metrics, patterns
// with a to-scale preview, the piece summary, offcuts and the purchase estimate.
func FormatSolution(sol model.Solution) string {
	var b strings.Builder

	b.WriteString(Header(sol.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Stock %s mm  Kerf %s mm  %s\n\n",
		Bold(mm(sol.Settings.StockLength)), Bold(mm(sol.Settings.Kerf)), Dim("#"+sol.ID))

	if len(sol.Bars) == 0 {
		b.WriteString(Dim("No pieces to cut."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(formatMetrics(sol.Metrics))
	b.WriteString("\n")
	b.WriteString(formatPatterns(sol.Patterns, sol.Settings.StockLength))
	b.WriteString("\n")
	b.WriteString(Header("Piece summary"))
	b.WriteString("\n")
	b.WriteString(formatPieces(sol.Pieces))

	if len(sol.Offcuts) > 0 {
		b.WriteString("\n")
		b.WriteString(formatOffcuts(sol.Offcuts))
	}

	b.WriteString("\n")
	b.WriteString(formatPurchase(sol.Purchase))
	return b.String()
}

func formatMetrics(m model.Metrics) string {
	var b strings.Builder
	b.WriteString(Header("Metrics"))
	b.WriteString("\n")
	rows := [][]string{
		{"Bars", strconv.Itoa(m.TotalBars)},
		{"Cuts", strconv.Itoa(m.TotalCuts)},
		{"Stock total", mm(m.StockLengthTotal) + " mm"},
		{"Used", mm(m.UsedLengthTotal) + " mm"},
		{"Free", fmt.Sprintf("%s mm (%.2f%%)", mm(m.FreeLengthTotal), m.FreePercent)},
		{"Kerf loss", mm(m.KerfLossTotal) + " mm"},
		{"Waste", fmt.Sprintf("%s mm (%.2f%%)", mm(m.WasteLengthTotal), m.WastePercent)},
		{"Efficiency", RenderUtilization(m.Efficiency, 20)},
	}
	b.WriteString(RenderTable([]string{"Metric", "Value"}, rows))
	return b.String()
}

func formatPatterns(patterns []model.Pattern, stockLength float64) string {
	var b strings.Builder
	b.WriteString(Header("Patterns"))
	b.WriteString("\n")

	for i, p := range patterns {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Bold(fmt.Sprintf("#%d", i+1)),
			StyleBlue.Render(fmt.Sprintf("x%d", p.Count)),
			Dim(fmt.Sprintf("free %s mm", mm(p.Free))))
		b.WriteString("  ")
		b.WriteString(RenderBarPreview(p, stockLength, previewWidth))
		b.WriteString("\n  ")
		b.WriteString(cutList(p.Cuts))
		b.WriteString("\n")
	}
	return b.String()
}

func cutList(cuts []model.Cut) string {
	parts := make([]string, len(cuts))
	for i, c := range cuts {
		if c.Label == "" {
			parts[i] = mm(c.Length)
			continue
		}
		parts[i] = c.Label + " " + mm(c.Length)
	}
	return strings.Join(parts, " | ")
}

func formatPieces(pieces []model.PieceSummary) string {
	rows := make([][]string, len(pieces))
	for i, p := range pieces {
		rows[i] = []string{p.Label, mm(p.Length), strconv.Itoa(p.Quantity)}
	}
	return RenderTable([]string{"Label", "Length (mm)", "Qty"}, rows)
}

func formatOffcuts(offcuts []model.Offcut) string {
	var b strings.Builder
	b.WriteString(Header("Offcuts"))
	b.WriteString("\n")
	rows := make([][]string, len(offcuts))
	for i, o := range offcuts {
		rows[i] = []string{strconv.Itoa(o.BarIndex), mm(o.Length)}
	}
	b.WriteString(RenderTable([]string{"Bar", "Length (mm)"}, rows))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d reusable, %s mm total", len(offcuts), mm(model.TotalOffcutLength(offcuts)))))
	return b.String()
}

func formatPurchase(p model.PurchaseEstimate) string {
	var b strings.Builder
	b.WriteString(Header("Purchase"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Bars needed: %s (minimum %d", Bold(strconv.Itoa(p.BarsNeeded)), p.BarsLowerBound)
	if extra := p.ExtraBars(); extra > 0 {
		fmt.Fprintf(&b, ", %s", StyleYellow.Render(fmt.Sprintf("+%d", extra)))
	}
	b.WriteString(")\n")
	if p.PricePerBar > 0 {
		fmt.Fprintf(&b, "Estimated cost: %s\n", Bold(fmt.Sprintf("%.2f", p.EstimatedCost)))
	}
	return b.String()
}

// FormatRejected lists rejected cut list entries, one per line.
func FormatRejected(rejected []*model.RequirementError) string {
	if len(rejected) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d entries rejected:", len(rejected))))
	b.WriteString("\n")
	for _, r := range rejected {
		fmt.Fprintf(&b, "  %s\n", r.Error())
	}
	return b.String()
}
