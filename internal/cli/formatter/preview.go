package formatter

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/piwi3910/BarCut/internal/model"
)

// RenderBarPreview draws a pattern to scale in width columns. Each cut is a
// block colored by its length relative to the shortest and longest cut of the
// pattern, blocks are separated by a thin divider for the kerf and the
// remnant is shaded.
func RenderBarPreview(p model.Pattern, stockLength float64, width int) string {
	if stockLength <= 0 || width < 1 {
		return ""
	}
	scale := float64(width) / stockLength
	colors := cutColors(p)

	var b strings.Builder
	used := 0
	for i, c := range p.Cuts {
		if i > 0 {
			b.WriteString(StyleDim.Render("│"))
			used++
		}
		cols := int(math.Round(c.Length * scale))
		if cols < 1 {
			cols = 1
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex()))
		b.WriteString(style.Render(strings.Repeat(filledBlock, cols)))
		used += cols
	}

	if rest := width - used; rest > 0 && p.Free > 0 {
		b.WriteString(StyleDim.Render(strings.Repeat(emptyBlock, rest)))
	}
	return b.String()
}

// cutColors maps every cut of the pattern onto the gradient between the
// pattern's own shortest and longest cut.
func cutColors(p model.Pattern) []model.RGB {
	lo, hi := p.LengthRange()
	colors := make([]model.RGB, len(p.Cuts))
	for i, c := range p.Cuts {
		colors[i] = model.GradientColor(c.Length, lo, hi)
	}
	return colors
}
