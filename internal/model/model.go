package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Requirement is one row of the cut list: a quantity of identical pieces.
type Requirement struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Length   float64 `json:"length"` // mm
	Label    string  `json:"label"`
}

func NewRequirement(qty int, length float64, label string) Requirement {
	return Requirement{
		ID:       uuid.New().String()[:8],
		Quantity: qty,
		Length:   length,
		Label:    label,
	}
}

// Piece is a single physical piece that has to be cut.
type Piece struct {
	Length float64 `json:"length"` // mm
	Label  string  `json:"label"`
}

// Cut is a piece as placed on a bar.
type Cut struct {
	Length float64 `json:"length"` // mm
	Label  string  `json:"label"`
}

// Bar is one commercial-length stock bar with its cuts in placement order.
// Free is the stock length minus every cut and its kerf.
type Bar struct {
	Cuts []Cut   `json:"cuts"`
	Free float64 `json:"free"` // mm
}

// UsedLength returns the summed cut lengths, kerf excluded.
func (b Bar) UsedLength() float64 {
	var total float64
	for _, c := range b.Cuts {
		total += c.Length
	}
	return total
}

// Signature returns the grouping key for the bar: its ordered (length, label) sequence.
func (b Bar) Signature() string {
	var sb strings.Builder
	for i, c := range b.Cuts {
		if i > 0 {
			sb.WriteByte('\x1e')
		}
		sb.WriteString(strconv.FormatFloat(c.Length, 'g', -1, 64))
		sb.WriteByte('\x1f')
		sb.WriteString(c.Label)
	}
	return sb.String()
}

// Pattern is a cutting layout shared by Count identical bars.
type Pattern struct {
	Signature string  `json:"signature"`
	Cuts      []Cut   `json:"cuts"`
	Free      float64 `json:"free"` // mm, taken from the first bar seen
	Count     int     `json:"count"`
}

// LengthRange returns the shortest and longest cut of the pattern.
func (p Pattern) LengthRange() (min, max float64) {
	if len(p.Cuts) == 0 {
		return 0, 0
	}
	min, max = p.Cuts[0].Length, p.Cuts[0].Length
	for _, c := range p.Cuts[1:] {
		if c.Length < min {
			min = c.Length
		}
		if c.Length > max {
			max = c.Length
		}
	}
	return min, max
}

// Metrics holds utilization and waste figures derived from a set of bars.
type Metrics struct {
	TotalBars        int     `json:"total_bars"`
	TotalCuts        int     `json:"total_cuts"`
	StockLengthTotal float64 `json:"stock_length_total"` // mm
	UsedLengthTotal  float64 `json:"used_length_total"`  // mm, kerf excluded
	FreeLengthTotal  float64 `json:"free_length_total"`  // mm
	WasteLengthTotal float64 `json:"waste_length_total"` // mm, free plus kerf loss
	KerfLossTotal    float64 `json:"kerf_loss_total"`    // mm
	WastePercent     float64 `json:"waste_percent"`
	FreePercent      float64 `json:"free_percent"`
	Efficiency       float64 `json:"efficiency"`
}

// PieceSummary is the total number of pieces cut for one label and length.
type PieceSummary struct {
	Label    string  `json:"label"`
	Length   float64 `json:"length"`
	Quantity int     `json:"quantity"`
}

// Settings holds the stock configuration for one solve.
type Settings struct {
	StockLength     float64 `json:"stock_length"`      // Commercial bar length in mm
	Kerf            float64 `json:"kerf"`              // Saw blade width in mm
	MinOffcutLength float64 `json:"min_offcut_length"` // Shortest remnant worth keeping, 0 = keep none
	PricePerBar     float64 `json:"price_per_bar"`     // Optional, used for cost estimates
}

func DefaultSettings() Settings {
	return Settings{
		StockLength:     6000,
		Kerf:            3,
		MinOffcutLength: 500,
	}
}

// Solution is the full result of one solve.
type Solution struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Settings Settings         `json:"settings"`
	Bars     []Bar            `json:"bars"`
	Patterns []Pattern        `json:"patterns"`
	Metrics  Metrics          `json:"metrics"`
	Pieces   []PieceSummary   `json:"pieces"`
	Offcuts  []Offcut         `json:"offcuts"`
	Purchase PurchaseEstimate `json:"purchase"`
}

func NewSolution(name string, settings Settings) Solution {
	if name == "" {
		name = "Untitled"
	}
	return Solution{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Settings: settings,
		Bars:     []Bar{},
		Patterns: []Pattern{},
		Pieces:   []PieceSummary{},
		Offcuts:  []Offcut{},
	}
}
