// Package export renders solved cut lists to PDF reports, piece labels,
// spreadsheets and DXF drawings.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BarCut/internal/model"
)

// ReportOptions controls the report header and footer.
type ReportOptions struct {
	Company  string         // Printed as the page title, empty = "BarCut"
	Location *time.Location // Time zone of the footer timestamp, nil = local
	Now      func() time.Time
}

func (o ReportOptions) timestamp() string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	t := now()
	if o.Location != nil {
		t = t.In(o.Location)
	}
	return t.Format("02/01/06 15:04")
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 10.0
	marginRight  = 10.0
	contentWidth = pageWidth - marginLeft - marginRight
	barHeight    = 14.0
	patternBreak = 230.0 // start a new page below this y before drawing a pattern
	summaryLimit = 250.0
)

// Fill colors.
var (
	kerfColor    = model.RGB{R: 50, G: 50, B: 50}
	remnantColor = model.RGB{R: 220, G: 220, B: 220}
	boxColor     = model.RGB{R: 240, G: 240, B: 240}
	headColor    = model.RGB{R: 200, G: 200, B: 200}
)

// ExportPDF writes the cutting report for a solution to path.
func ExportPDF(path string, sol model.Solution, opts ReportOptions) error {
	pdf, err := buildReport(sol, opts)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF writes the cutting report for a solution to w.
func WritePDF(w io.Writer, sol model.Solution, opts ReportOptions) error {
	pdf, err := buildReport(sol, opts)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildReport(sol model.Solution, opts ReportOptions) (*fpdf.Fpdf, error) {
	if len(sol.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns to export")
	}
	if sol.Settings.StockLength <= 0 {
		return nil, fmt.Errorf("invalid stock length %.1f", sol.Settings.StockLength)
	}

	company := opts.Company
	if company == "" {
		company = "BarCut"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	stamp := opts.timestamp()

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr(company), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, "Cutting and material optimization report", "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetX(-50)
		pdf.CellFormat(40, 10, stamp, "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	renderJobHeader(pdf, tr, sol)
	renderMetricsBox(pdf, sol)
	renderPatterns(pdf, tr, sol)
	renderPieceSummary(pdf, tr, sol.Pieces)

	return pdf, pdf.Error()
}

// renderJobHeader prints the project name, stock length and kerf.
func renderJobHeader(pdf *fpdf.Fpdf, tr func(string) string, sol model.Solution) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, "Project:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(sol.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, "Stock length:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, fmt.Sprintf("%.0f mm", sol.Settings.StockLength), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, "Saw kerf:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%g mm", sol.Settings.Kerf), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

// renderMetricsBox draws the shaded block with bar count, free and waste totals.
func renderMetricsBox(pdf *fpdf.Fpdf, sol model.Solution) {
	m := sol.Metrics

	setFill(pdf, boxColor)
	pdf.Rect(marginLeft, pdf.GetY(), contentWidth, 20, "F")
	yStart := pdf.GetY() + 3

	pdf.SetXY(marginLeft, yStart)
	metricCell(pdf, "Total bars:", fmt.Sprintf("%d pcs.", m.TotalBars))
	metricCell(pdf, "Total free:", fmt.Sprintf("%.2f m (%.1f%%)", m.FreeLengthTotal/1000, m.FreePercent))
	pdf.Ln(-1)

	pdf.SetXY(marginLeft, yStart+6)
	metricCell(pdf, "Total waste:", fmt.Sprintf("%.2f m (%.1f%%)", m.WasteLengthTotal/1000, m.WastePercent))
	if sol.Purchase.EstimatedCost > 0 {
		metricCell(pdf, "Estimated cost:", fmt.Sprintf("%.2f", sol.Purchase.EstimatedCost))
	} else {
		metricCell(pdf, "Minimum bars:", fmt.Sprintf("%d pcs.", sol.Purchase.BarsLowerBound))
	}

	pdf.SetXY(marginLeft, yStart+20)
	pdf.Ln(2)
}

func metricCell(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, 5, label, "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(50, 5, value, "", 0, "L", false, 0, "")
}

// renderPatterns draws every pattern as a scaled bar: cuts, kerf slivers and remnant.
func renderPatterns(pdf *fpdf.Fpdf, tr func(string) string, sol model.Solution) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Cutting patterns", "", 1, "L", false, 0, "")

	scale := contentWidth / sol.Settings.StockLength
	kerfW := sol.Settings.Kerf * scale

	for i, p := range sol.Patterns {
		if pdf.GetY() > patternBreak {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(25, 6, fmt.Sprintf("Pattern #%d", i+1), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(40, 6, fmt.Sprintf("(repeat %d times)", p.Count), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Free: %.0f mm", p.Free), "", 1, "R", false, 0, "")

		x := marginLeft
		y := pdf.GetY() + 2
		minLen, maxLen := p.LengthRange()
		pdf.SetLineWidth(0.2)
		pdf.SetDrawColor(0, 0, 0)

		for _, c := range p.Cuts {
			w := c.Length * scale
			setFill(pdf, lighten(model.GradientColor(c.Length, minLen, maxLen)))
			pdf.Rect(x, y, w, barHeight, "FD")
			drawCutLabel(pdf, tr(c.Label), fmt.Sprintf("%.0f", c.Length), x, y, w)
			x += w

			setFill(pdf, kerfColor)
			pdf.Rect(x, y, kerfW, barHeight, "F")
			x += kerfW
		}

		if remW := p.Free * scale; remW > 0 {
			setFill(pdf, remnantColor)
			pdf.Rect(x, y, remW, barHeight, "FD")
			rem := fmt.Sprintf("%.0f", p.Free)
			pdf.SetFont("Helvetica", "I", 7)
			if pdf.GetStringWidth(rem) < remW {
				pdf.SetXY(x, y+5)
				pdf.CellFormat(remW, 4, rem, "", 0, "C", false, 0, "")
			}
		}

		pdf.SetXY(marginLeft, y)
		pdf.Ln(barHeight + 10)
	}
	pdf.Ln(5)
}

// drawCutLabel centers label and length inside a cut, or below it with a
// leader line when the cut is too narrow.
func drawCutLabel(pdf *fpdf.Fpdf, label, length string, x, y, w float64) {
	pdf.SetFont("Helvetica", "B", 7)
	needed := pdf.GetStringWidth(label)
	if lw := pdf.GetStringWidth(length); lw > needed {
		needed = lw
	}
	needed += 2

	if needed < w {
		pdf.SetXY(x, y+3)
		pdf.CellFormat(w, 3, label, "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(x, y+7)
		pdf.CellFormat(w, 3, length, "", 0, "C", false, 0, "")
		return
	}

	center := x + w/2
	pdf.Line(center, y+barHeight, center, y+barHeight+2)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(x, y+barHeight+2)
	pdf.CellFormat(w, 3, label, "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(x, y+barHeight+5)
	pdf.CellFormat(w, 3, length, "", 0, "C", false, 0, "")
}

// renderPieceSummary prints the centered table of pieces cut per label and length.
func renderPieceSummary(pdf *fpdf.Fpdf, tr func(string) string, pieces []model.PieceSummary) {
	if len(pieces) == 0 {
		return
	}

	tableHeight := 15 + float64(len(pieces))*6
	if pdf.GetY()+tableHeight > summaryLimit {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Piece summary", "", 1, "L", false, 0, "")

	colWidths := []float64{60, 60, 40}
	headers := []string{"Label", "Length (mm)", "Total quantity"}
	tableX := (pageWidth - (colWidths[0] + colWidths[1] + colWidths[2])) / 2

	setFill(pdf, headColor)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(tableX)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(colWidths[i], 7, h, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range pieces {
		pdf.SetX(tableX)
		pdf.CellFormat(colWidths[0], 6, tr(p.Label), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%g", p.Length), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%d", p.Quantity), "1", 1, "C", false, 0, "")
	}
}

func setFill(pdf *fpdf.Fpdf, c model.RGB) {
	pdf.SetFillColor(c.R, c.G, c.B)
}

// lighten mixes c halfway towards white so black text stays readable.
func lighten(c model.RGB) model.RGB {
	return model.RGB{R: (c.R + 255) / 2, G: (c.G + 255) / 2, B: (c.B + 255) / 2}
}
