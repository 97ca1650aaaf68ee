package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a remnant long enough to go back on the rack for later jobs.
type Offcut struct {
	ID       string  `json:"id"`
	BarIndex int     `json:"bar_index"` // 1-based index of the source bar
	Length   float64 `json:"length"`    // mm
}

// DetectOffcuts returns the free remnants of bars that are at least minLength
// long, longest first. A minLength of zero or less disables detection.
func DetectOffcuts(bars []Bar, minLength float64) []Offcut {
	offcuts := []Offcut{}
	if minLength <= 0 {
		return offcuts
	}
	for i, b := range bars {
		if b.Free >= minLength {
			offcuts = append(offcuts, Offcut{
				ID:       uuid.New().String()[:8],
				BarIndex: i + 1,
				Length:   b.Free,
			})
		}
	}
	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength sums the length of all offcuts.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
