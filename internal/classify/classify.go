// Package classify maps single color samples onto the Morse cell alphabet.
package classify

import "image/color"

// Symbol is the classification result for one matrix cell.
type Symbol int

const (
	Blank Symbol = iota // unlit or unrecognized color
	Dot                 // class A, red in the reference matrix
	Dash                // class B, blue in the reference matrix
)

// String returns the Morse notation for the symbol. Blank contributes
// nothing to a sequence, so it renders as the empty string.
func (s Symbol) String() string {
	switch s {
	case Dot:
		return "."
	case Dash:
		return "-"
	default:
		return ""
	}
}

// Classifier evaluates cell colors against a fixed set of thresholds.
// It is stateless apart from its configuration and safe for repeated
// calls on the same input.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier builds a classifier for the given thresholds. The caller
// is expected to have validated them.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

// Classify converts the sample to HSV and tests the dot range first, then
// the dash range. If both would match, dot wins; keeping the ranges
// disjoint is the tuner's responsibility.
func (c *Classifier) Classify(sample color.Color) Symbol {
	r, g, b, _ := sample.RGBA()
	h, s, v := RGBToHSV(float64(r>>8), float64(g>>8), float64(b>>8))

	if c.thresholds.Dot.Matches(h, s, v) {
		return Dot
	}
	if c.thresholds.Dash.Matches(h, s, v) {
		return Dash
	}
	return Blank
}
