package model

// StockPreset is a named commercial stock the shop keeps on the rack.
type StockPreset struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"` // mm
	Kerf   float64 `json:"kerf"`   // mm, 0 = use the default kerf
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to every solve unless overridden by flags
	DefaultStockLength float64 `json:"default_stock_length"`
	DefaultKerf        float64 `json:"default_kerf"`
	MinOffcutLength    float64 `json:"min_offcut_length"`
	PricePerBar        float64 `json:"price_per_bar"`

	// Report preferences
	CompanyName string `json:"company_name"`
	TimeZone    string `json:"time_zone"` // IANA name used for report timestamps, empty = local

	StockPresets  []StockPreset `json:"stock_presets"`
	RecentExports []string      `json:"recent_exports"`
}

const maxRecentExports = 10

// DefaultAppConfig returns an AppConfig populated with the DefaultSettings values.
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultStockLength: defaults.StockLength,
		DefaultKerf:        defaults.Kerf,
		MinOffcutLength:    defaults.MinOffcutLength,
		PricePerBar:        defaults.PricePerBar,
		StockPresets: []StockPreset{
			{Name: "6m", Length: 6000},
			{Name: "12m", Length: 12000},
		},
		RecentExports: []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a Settings struct.
func (c AppConfig) ApplyToSettings(s *Settings) {
	s.StockLength = c.DefaultStockLength
	s.Kerf = c.DefaultKerf
	s.MinOffcutLength = c.MinOffcutLength
	s.PricePerBar = c.PricePerBar
}

// Preset returns the stock preset with the given name.
func (c AppConfig) Preset(name string) (StockPreset, bool) {
	for _, p := range c.StockPresets {
		if p.Name == name {
			return p, true
		}
	}
	return StockPreset{}, false
}

// AddRecentExport records path at the front of the recent list, dropping
// duplicates and trimming to the most recent entries.
func (c *AppConfig) AddRecentExport(path string) {
	recent := []string{path}
	for _, p := range c.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentExports {
		recent = recent[:maxRecentExports]
	}
	c.RecentExports = recent
}
