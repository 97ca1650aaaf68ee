package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetPatterns = "Patterns"
	SheetBars     = "Bars"
	SheetPieces   = "Pieces"
	SheetSummary  = "Summary"
)

// ExportExcel writes the solution to an .xlsx workbook with one sheet each for
// patterns, individual bars, the piece summary and the overall metrics.
func ExportExcel(path string, sol model.Solution) error {
	if len(sol.Patterns) == 0 {
		return fmt.Errorf("no patterns to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetPatterns); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetBars, SheetPieces, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	w := sheetWriter{f: f, bold: bold}
	w.table(SheetPatterns, []string{"Pattern", "Repeat", "Cuts", "Layout", "Free (mm)"}, patternRows(sol.Patterns))
	w.table(SheetBars, []string{"Bar", "Position", "Label", "Length (mm)", "Free (mm)"}, barRows(sol.Bars))
	w.table(SheetPieces, []string{"Label", "Length (mm)", "Total quantity"}, pieceRows(sol.Pieces))
	w.table(SheetSummary, []string{"Metric", "Value"}, summaryRows(sol))
	if w.err != nil {
		return w.err
	}

	_ = f.SetColWidth(SheetPatterns, "D", "D", 60)
	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// sheetWriter keeps the first error so table writes can be chained.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) table(sheet string, headers []string, rows [][]interface{}) {
	if w.err != nil {
		return
	}
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		w.err = fmt.Errorf("failed to write %s header: %w", sheet, err)
		return
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := w.f.SetCellStyle(sheet, "A1", last, w.bold); err != nil {
		w.err = fmt.Errorf("failed to style %s header: %w", sheet, err)
		return
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := row
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			w.err = fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
			return
		}
	}
}

func patternRows(patterns []model.Pattern) [][]interface{} {
	rows := make([][]interface{}, 0, len(patterns))
	for i, p := range patterns {
		rows = append(rows, []interface{}{i + 1, p.Count, len(p.Cuts), layout(p.Cuts), p.Free})
	}
	return rows
}

func barRows(bars []model.Bar) [][]interface{} {
	var rows [][]interface{}
	for i, b := range bars {
		for j, c := range b.Cuts {
			var free interface{}
			if j == len(b.Cuts)-1 {
				free = b.Free
			}
			rows = append(rows, []interface{}{i + 1, j + 1, c.Label, c.Length, free})
		}
	}
	return rows
}

func pieceRows(pieces []model.PieceSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(pieces))
	for _, p := range pieces {
		rows = append(rows, []interface{}{p.Label, p.Length, p.Quantity})
	}
	return rows
}

func summaryRows(sol model.Solution) [][]interface{} {
	m := sol.Metrics
	return [][]interface{}{
		{"Project", sol.Name},
		{"Stock length (mm)", sol.Settings.StockLength},
		{"Kerf (mm)", sol.Settings.Kerf},
		{"Total bars", m.TotalBars},
		{"Minimum bars", sol.Purchase.BarsLowerBound},
		{"Total cuts", m.TotalCuts},
		{"Stock length total (mm)", m.StockLengthTotal},
		{"Used length (mm)", m.UsedLengthTotal},
		{"Free length (mm)", m.FreeLengthTotal},
		{"Kerf loss (mm)", m.KerfLossTotal},
		{"Waste length (mm)", m.WasteLengthTotal},
		{"Waste (%)", m.WastePercent},
		{"Free (%)", m.FreePercent},
		{"Efficiency (%)", m.Efficiency},
		{"Estimated cost", sol.Purchase.EstimatedCost},
	}
}

// layout renders cuts as "C7 4190 | SP1 265 | ...".
func layout(cuts []model.Cut) string {
	parts := make([]string, len(cuts))
	for i, c := range cuts {
		parts[i] = fmt.Sprintf("%s %g", c.Label, c.Length)
	}
	return strings.Join(parts, " | ")
}
