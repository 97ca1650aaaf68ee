package engine

import (
	"sort"

	"github.com/piwi3910/BarCut/internal/model"
)

// Aggregate groups bars with identical cut sequences into patterns, in the
// order their signatures first appear.
func Aggregate(bars []model.Bar) []model.Pattern {
	patterns := []model.Pattern{}
	index := make(map[string]int)

	for _, b := range bars {
		sig := b.Signature()
		if i, ok := index[sig]; ok {
			patterns[i].Count++
			continue
		}
		cuts := make([]model.Cut, len(b.Cuts))
		copy(cuts, b.Cuts)
		index[sig] = len(patterns)
		patterns = append(patterns, model.Pattern{
			Signature: sig,
			Cuts:      cuts,
			Free:      b.Free,
			Count:     1,
		})
	}

	return patterns
}

// SummarizePieces totals the pieces cut per (label, length) across all
// pattern repetitions, sorted by label. Entries sharing a label keep the order
// in which they first appear.
func SummarizePieces(patterns []model.Pattern) []model.PieceSummary {
	type key struct {
		label  string
		length float64
	}
	totals := make(map[key]int)
	var order []key

	for _, p := range patterns {
		for _, c := range p.Cuts {
			k := key{label: c.Label, length: c.Length}
			if _, ok := totals[k]; !ok {
				order = append(order, k)
			}
			totals[k] += p.Count
		}
	}

	summary := make([]model.PieceSummary, 0, len(order))
	for _, k := range order {
		summary = append(summary, model.PieceSummary{
			Label:    k.label,
			Length:   k.length,
			Quantity: totals[k],
		})
	}
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Label < summary[j].Label
	})
	return summary
}
