package model

import "math"

// PurchaseEstimate compares the bars a solution uses against the theoretical minimum.
type PurchaseEstimate struct {
	TotalConsumption float64 `json:"total_consumption"` // Σ(length + kerf) over all pieces, mm
	BarsLowerBound   int     `json:"bars_lower_bound"`  // ceil(TotalConsumption / stock length)
	BarsNeeded       int     `json:"bars_needed"`       // Bars actually used by the solution
	PricePerBar      float64 `json:"price_per_bar"`
	EstimatedCost    float64 `json:"estimated_cost"`
}

// ExtraBars returns how many bars the heuristic uses above the lower bound.
func (pe PurchaseEstimate) ExtraBars() int {
	if pe.BarsNeeded < pe.BarsLowerBound {
		return 0
	}
	return pe.BarsNeeded - pe.BarsLowerBound
}

// CalculatePurchaseEstimate computes how many bars a cut list needs at least,
// charging one kerf per piece, and prices the bars actually used.
func CalculatePurchaseEstimate(reqs []Requirement, stockLength, kerf float64, barsNeeded int, pricePerBar float64) PurchaseEstimate {
	var consumption float64
	for _, r := range reqs {
		if r.Quantity <= 0 || r.Length <= 0 {
			continue
		}
		consumption += (r.Length + kerf) * float64(r.Quantity)
	}

	est := PurchaseEstimate{
		TotalConsumption: consumption,
		BarsNeeded:       barsNeeded,
		PricePerBar:      pricePerBar,
		EstimatedCost:    float64(barsNeeded) * pricePerBar,
	}
	if stockLength > 0 {
		est.BarsLowerBound = int(math.Ceil(consumption / stockLength))
	}
	return est
}
