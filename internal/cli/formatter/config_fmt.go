package formatter

import (
	"strings"

	"github.com/piwi3910/BarCut/internal/model"
)

// FormatConfig renders the configuration file contents.
func FormatConfig(path string, cfg model.AppConfig) string {
	var b strings.Builder
	b.WriteString(Header("Configuration"))
	b.WriteString("\n")
	b.WriteString(Dim(path))
	b.WriteString("\n\n")

	b.WriteString(RenderTable([]string{"Key", "Value"}, [][]string{
		{"stock-length", mm(cfg.DefaultStockLength)},
		{"kerf", mm(cfg.DefaultKerf)},
		{"min-offcut", mm(cfg.MinOffcutLength)},
		{"price", mm(cfg.PricePerBar)},
		{"company", cfg.CompanyName},
		{"timezone", cfg.TimeZone},
	}))

	if len(cfg.StockPresets) > 0 {
		b.WriteString("\n")
		rows := make([][]string, len(cfg.StockPresets))
		for i, p := range cfg.StockPresets {
			kerf := "default"
			if p.Kerf > 0 {
				kerf = mm(p.Kerf)
			}
			rows[i] = []string{p.Name, mm(p.Length), kerf}
		}
		b.WriteString(RenderTable([]string{"Preset", "Length (mm)", "Kerf (mm)"}, rows))
	}

	if len(cfg.RecentExports) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Recent exports"))
		b.WriteString("\n")
		for _, p := range cfg.RecentExports {
			b.WriteString("  ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	return b.String()
}
