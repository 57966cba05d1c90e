package classify

import (
	"errors"
	"fmt"
)

// ErrInvalidRange indicates a threshold span with min greater than max.
var ErrInvalidRange = errors.New("threshold range min exceeds max")

// Span is an inclusive [Min, Max] bound on a single HSV channel.
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether x lies inside the span, bounds included.
func (s Span) Contains(x float64) bool {
	return x >= s.Min && x <= s.Max
}

func (s Span) validate(name string) error {
	if s.Min > s.Max {
		return fmt.Errorf("%s [%g, %g]: %w", name, s.Min, s.Max, ErrInvalidRange)
	}
	return nil
}

// ColorRange describes one LED color class. Hue may need two spans because
// red wraps around the 0/180 boundary in the OpenCV hue scale.
type ColorRange struct {
	Hue []Span `yaml:"hue"`
	Sat Span   `yaml:"sat"`
	Val Span   `yaml:"val"`
}

// Matches reports whether the HSV sample falls inside the range: any hue
// span plus both the saturation and value spans.
func (c ColorRange) Matches(h, s, v float64) bool {
	if !c.Sat.Contains(s) || !c.Val.Contains(v) {
		return false
	}
	for _, span := range c.Hue {
		if span.Contains(h) {
			return true
		}
	}
	return false
}

func (c ColorRange) validate(name string) error {
	if len(c.Hue) == 0 {
		return fmt.Errorf("%s: no hue spans configured", name)
	}
	for i, span := range c.Hue {
		if err := span.validate(fmt.Sprintf("%s hue[%d]", name, i)); err != nil {
			return err
		}
	}
	if err := c.Sat.validate(name + " sat"); err != nil {
		return err
	}
	return c.Val.validate(name + " val")
}

// Thresholds holds the tunable HSV bounds for both symbol classes. It is
// read-only during a decode pass; retuning happens between passes by
// constructing a new Classifier.
type Thresholds struct {
	Dot  ColorRange `yaml:"dot"`
	Dash ColorRange `yaml:"dash"`
}

// DefaultThresholds returns the reference tuning for red-dot / blue-dash
// matrices under gamma-corrected exposure. Saturation floors are loose (40)
// on purpose: over-bright LEDs wash toward white.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Dot: ColorRange{
			Hue: []Span{{Min: 0, Max: 10}, {Min: 160, Max: 180}},
			Sat: Span{Min: 40, Max: 255},
			Val: Span{Min: 80, Max: 255},
		},
		Dash: ColorRange{
			Hue: []Span{{Min: 90, Max: 130}},
			Sat: Span{Min: 40, Max: 255},
			Val: Span{Min: 80, Max: 255},
		},
	}
}

// Validate checks every configured span. Overlap between the dot and dash
// ranges is not rejected here: the classifier resolves it by testing the
// dot range first, so keeping the classes disjoint is a tuning concern.
func (t Thresholds) Validate() error {
	if err := t.Dot.validate("dot"); err != nil {
		return err
	}
	return t.Dash.validate("dash")
}
