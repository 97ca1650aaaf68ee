package model

import "fmt"

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B int
}

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Gradient endpoints: the shortest cut of a pattern is red, the longest blue.
var (
	GradientLow  = RGB{R: 220, G: 53, B: 69}
	GradientHigh = RGB{R: 30, G: 136, B: 229}
)

// GradientColor maps length within [minLength, maxLength] onto the gradient.
// A pattern whose cuts all share one length gets the low color.
func GradientColor(length, minLength, maxLength float64) RGB {
	if minLength == maxLength {
		return GradientLow
	}
	ratio := (length - minLength) / (maxLength - minLength)
	return RGB{
		R: int(float64(GradientLow.R) + float64(GradientHigh.R-GradientLow.R)*ratio),
		G: int(float64(GradientLow.G) + float64(GradientHigh.G-GradientLow.G)*ratio),
		B: int(float64(GradientLow.B) + float64(GradientHigh.B-GradientLow.B)*ratio),
	}
}
