package model

import (
	"errors"
	"fmt"
)

// MaxQuantity is the largest quantity accepted for a single cut list entry.
const MaxQuantity = 100000

var (
	// ErrInvalidInput is returned for non-positive or unparsable quantities and lengths.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPieceTooLong is returned when a piece plus one kerf exceeds the stock length.
	ErrPieceTooLong = errors.New("piece too long for stock")
)

// RequirementError reports why a single cut-list entry was rejected.
type RequirementError struct {
	Index  int // zero-based position of the entry in the batch
	Label  string
	Length float64
	Err    error
}

func (e *RequirementError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("entry %d (%s): %v", e.Index+1, e.Label, e.Err)
	}
	return fmt.Sprintf("entry %d: %v", e.Index+1, e.Err)
}

func (e *RequirementError) Unwrap() error {
	return e.Err
}
