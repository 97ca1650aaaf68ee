package export

import (
	"fmt"

	"github.com/piwi3910/BarCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerBar  = "BAR"
	LayerCuts = "CUTS"
	LayerText = "TEXT"
)

// Drawing geometry in mm. Bars are drawn to scale along X and stacked
// downward, one row per pattern.
const (
	dxfBarHeight  = 60.0
	dxfRowSpacing = 140.0
	dxfTextHeight = 20.0
)

// ExportDXF writes one to-scale outline per pattern with a line at every
// kerf, the remnant and the cut labels.
func ExportDXF(path string, sol model.Solution) error {
	if len(sol.Patterns) == 0 {
		return fmt.Errorf("no patterns to export")
	}

	d := dxf.NewDrawing()
	if err := addLayers(d); err != nil {
		return err
	}

	for i, p := range sol.Patterns {
		y := -float64(i) * dxfRowSpacing
		if err := drawPattern(d, sol.Settings, p, i+1, y); err != nil {
			return fmt.Errorf("failed to draw pattern %d: %w", i+1, err)
		}
	}

	return d.SaveAs(path)
}

func addLayers(d *drawing.Drawing) error {
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerBar, color.White},
		{LayerCuts, color.Red},
		{LayerText, color.Cyan},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}
	return nil
}

func drawPattern(d *drawing.Drawing, settings model.Settings, p model.Pattern, number int, y float64) error {
	if err := d.ChangeLayer(LayerText); err != nil {
		return err
	}
	title := fmt.Sprintf("PATTERN #%d  x%d  FREE %.0f", number, p.Count, p.Free)
	if _, err := d.Text(title, 0, y+dxfBarHeight+10, 0, dxfTextHeight); err != nil {
		return err
	}

	if err := d.ChangeLayer(LayerBar); err != nil {
		return err
	}
	if err := rect(d, 0, y, settings.StockLength, dxfBarHeight); err != nil {
		return err
	}

	x := 0.0
	for _, c := range p.Cuts {
		if err := d.ChangeLayer(LayerText); err != nil {
			return err
		}
		if _, err := d.Text(fmt.Sprintf("%s %g", c.Label, c.Length), x+5, y+dxfBarHeight/2, 0, dxfTextHeight/2); err != nil {
			return err
		}

		x += c.Length
		if err := d.ChangeLayer(LayerCuts); err != nil {
			return err
		}
		if _, err := d.Line(x, y, 0, x, y+dxfBarHeight, 0); err != nil {
			return err
		}
		if settings.Kerf > 0 {
			x += settings.Kerf
			if _, err := d.Line(x, y, 0, x, y+dxfBarHeight, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// rect draws an axis-aligned rectangle as four lines.
func rect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, c := range corners {
		if _, err := d.Line(c[0], c[1], 0, c[2], c[3], 0); err != nil {
			return err
		}
	}
	return nil
}
