package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequirement(t *testing.T) {
	r := NewRequirement(6, 265, "SP1")

	assert.Len(t, r.ID, 8)
	assert.Equal(t, 6, r.Quantity)
	assert.Equal(t, 265.0, r.Length)
	assert.Equal(t, "SP1", r.Label)
	assert.NotEqual(t, r.ID, NewRequirement(6, 265, "SP1").ID)
}

func TestBarUsedLength(t *testing.T) {
	b := Bar{Cuts: []Cut{{Length: 4190}, {Length: 265}, {Length: 265.5}}}
	assert.InDelta(t, 4720.5, b.UsedLength(), 1e-9)
	assert.Zero(t, Bar{}.UsedLength())
}

func TestBarSignature(t *testing.T) {
	a := Bar{Cuts: []Cut{{Length: 500, Label: "A"}, {Length: 200, Label: "B"}}, Free: 1}
	b := Bar{Cuts: []Cut{{Length: 500, Label: "A"}, {Length: 200, Label: "B"}}, Free: 99}
	swapped := Bar{Cuts: []Cut{{Length: 200, Label: "B"}, {Length: 500, Label: "A"}}}
	// A label that contains the length of the next cut must not collide.
	tricky := Bar{Cuts: []Cut{{Length: 500, Label: "A\x1e200"}}}

	assert.Equal(t, a.Signature(), b.Signature(), "free is not part of the signature")
	assert.NotEqual(t, a.Signature(), swapped.Signature())
	assert.NotEqual(t, a.Signature(), tricky.Signature())
	assert.Equal(t, "", Bar{}.Signature())
}

func TestPatternLengthRange(t *testing.T) {
	p := Pattern{Cuts: []Cut{{Length: 265}, {Length: 4190}, {Length: 120}}}
	min, max := p.LengthRange()
	assert.Equal(t, 120.0, min)
	assert.Equal(t, 4190.0, max)

	min, max = Pattern{}.LengthRange()
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestNewSolution(t *testing.T) {
	s := NewSolution("", DefaultSettings())

	assert.Equal(t, "Untitled", s.Name)
	assert.Len(t, s.ID, 8)
	assert.NotNil(t, s.Bars)
	assert.NotNil(t, s.Patterns)
	assert.Equal(t, 6000.0, s.Settings.StockLength)
	assert.Equal(t, 3.0, s.Settings.Kerf)
}

func TestRequirementError(t *testing.T) {
	err := &RequirementError{Index: 2, Label: "C7", Err: fmt.Errorf("%w: too big", ErrPieceTooLong)}

	assert.Equal(t, "entry 3 (C7): piece too long for stock: too big", err.Error())
	assert.True(t, errors.Is(err, ErrPieceTooLong))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	unlabeled := &RequirementError{Index: 0, Err: ErrInvalidInput}
	assert.Equal(t, "entry 1: invalid input", unlabeled.Error())

	var target *RequirementError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, 2, target.Index)
}

func TestGradientColor(t *testing.T) {
	assert.Equal(t, GradientLow, GradientColor(100, 100, 500))
	assert.Equal(t, GradientHigh, GradientColor(500, 100, 500))
	assert.Equal(t, RGB{R: 125, G: 94, B: 149}, GradientColor(300, 100, 500))
}

func TestGradientColor_DegenerateRange(t *testing.T) {
	assert.Equal(t, GradientLow, GradientColor(265, 265, 265))
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#dc3545", GradientLow.Hex())
	assert.Equal(t, "#1e88e5", GradientHigh.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
}
