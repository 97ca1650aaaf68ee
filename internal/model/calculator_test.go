package model

import (
	"math"
	"testing"
)

func TestCalculatePurchaseEstimateBasic(t *testing.T) {
	reqs := []Requirement{
		{Label: "C7", Length: 4190, Quantity: 1},
		{Label: "SP1", Length: 265, Quantity: 6},
	}
	est := CalculatePurchaseEstimate(reqs, 6000, 3, 1, 45.00)

	// 4193 + 6 x 268 = 5801
	if math.Abs(est.TotalConsumption-5801) > 1e-9 {
		t.Errorf("expected consumption 5801, got %.1f", est.TotalConsumption)
	}
	if est.BarsLowerBound != 1 {
		t.Errorf("expected lower bound 1, got %d", est.BarsLowerBound)
	}
	if est.EstimatedCost != 45.00 {
		t.Errorf("expected cost 45, got %.2f", est.EstimatedCost)
	}
	if est.ExtraBars() != 0 {
		t.Errorf("expected no extra bars, got %d", est.ExtraBars())
	}
}

func TestCalculatePurchaseEstimateZeroStockLength(t *testing.T) {
	reqs := []Requirement{{Label: "P1", Length: 100, Quantity: 1}}
	est := CalculatePurchaseEstimate(reqs, 0, 0, 0, 0)
	if est.BarsLowerBound != 0 {
		t.Errorf("expected 0 bars for zero stock length, got %d", est.BarsLowerBound)
	}
	if est.TotalConsumption <= 0 {
		t.Error("expected positive consumption even with zero stock length")
	}
}

func TestCalculatePurchaseEstimateExtraBars(t *testing.T) {
	// 3 x 603 = 1809 fits in two 1000 mm bars on paper, but each bar holds only one piece.
	reqs := []Requirement{{Label: "A", Length: 600, Quantity: 3}}
	est := CalculatePurchaseEstimate(reqs, 1000, 3, 3, 10)

	if est.BarsLowerBound != 2 {
		t.Errorf("expected lower bound 2, got %d", est.BarsLowerBound)
	}
	if est.ExtraBars() != 1 {
		t.Errorf("expected 1 extra bar, got %d", est.ExtraBars())
	}
	if est.EstimatedCost != 30 {
		t.Errorf("expected cost 30, got %.2f", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateSkipsInvalidRows(t *testing.T) {
	reqs := []Requirement{
		{Label: "ok", Length: 100, Quantity: 2},
		{Label: "zero qty", Length: 100, Quantity: 0},
		{Label: "neg length", Length: -5, Quantity: 3},
	}
	est := CalculatePurchaseEstimate(reqs, 1000, 0, 1, 0)
	if est.TotalConsumption != 200 {
		t.Errorf("expected consumption 200, got %.1f", est.TotalConsumption)
	}
}
