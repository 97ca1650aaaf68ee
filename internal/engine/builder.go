package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/BarCut/internal/model"
)

// Builder validates cut-list entries and expands them into single pieces.
// A Builder belongs to one solve and is not safe for concurrent use.
type Builder struct {
	settings model.Settings
	pieces   []model.Piece
}

func NewBuilder(settings model.Settings) *Builder {
	return &Builder{settings: settings}
}

// Add appends quantity pieces of the given length and label. Nothing is
// appended when the entry is rejected.
func (b *Builder) Add(quantity int, length float64, label string) error {
	if err := ValidateSettings(b.settings); err != nil {
		return err
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1, got %d", model.ErrInvalidInput, quantity)
	}
	if quantity > model.MaxQuantity {
		return fmt.Errorf("%w: quantity must be at most %d, got %d", model.ErrInvalidInput, model.MaxQuantity, quantity)
	}
	if !isFinite(length) || length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %v", model.ErrInvalidInput, length)
	}
	if length+b.settings.Kerf > b.settings.StockLength {
		return fmt.Errorf("%w: %g mm + %g mm kerf exceeds stock length %g mm",
			model.ErrPieceTooLong, length, b.settings.Kerf, b.settings.StockLength)
	}

	for i := 0; i < quantity; i++ {
		b.pieces = append(b.pieces, model.Piece{Length: length, Label: label})
	}
	return nil
}

// AddAll adds every entry, continuing past rejected ones, and returns the rejections.
func (b *Builder) AddAll(entries []model.Requirement) []*model.RequirementError {
	var rejected []*model.RequirementError
	for i, e := range entries {
		if err := b.Add(e.Quantity, e.Length, e.Label); err != nil {
			rejected = append(rejected, &model.RequirementError{
				Index:  i,
				Label:  e.Label,
				Length: e.Length,
				Err:    err,
			})
		}
	}
	return rejected
}

// Pieces returns a copy of the accumulated pieces in insertion order.
func (b *Builder) Pieces() []model.Piece {
	out := make([]model.Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// Len returns the number of accumulated pieces.
func (b *Builder) Len() int {
	return len(b.pieces)
}

// ValidateSettings checks the stock length is positive and the kerf is not negative.
func ValidateSettings(s model.Settings) error {
	if !isFinite(s.StockLength) || s.StockLength <= 0 {
		return fmt.Errorf("%w: stock length must be positive, got %v", model.ErrInvalidInput, s.StockLength)
	}
	if !isFinite(s.Kerf) || s.Kerf < 0 {
		return fmt.Errorf("%w: kerf must not be negative, got %v", model.ErrInvalidInput, s.Kerf)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
