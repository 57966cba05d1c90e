// Package config holds the decode configuration shared by the still-image
// and live variants.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ivlev/ledmorse/internal/classify"
)

var (
	// ErrInvalidGamma indicates a non-positive gamma value.
	ErrInvalidGamma = errors.New("gamma must be positive")
	// ErrInvalidGrid indicates a logical grid with non-positive dimensions.
	ErrInvalidGrid = errors.New("grid dimensions must be positive")
)

// GridLayout fixes the logical resolution a frame is decoded against.
// Columns are always WordsPerRow*SlotWidth; the frame is downsampled to
// Rows x Cols before any classification.
type GridLayout struct {
	Rows        int `yaml:"rows"`
	WordsPerRow int `yaml:"words_per_row"`
	SlotWidth   int `yaml:"slot_width"`
}

// Cols returns the total cell count per row.
func (g GridLayout) Cols() int {
	return g.WordsPerRow * g.SlotWidth
}

// Slots returns the number of sequences every decode pass yields.
func (g GridLayout) Slots() int {
	return g.Rows * g.WordsPerRow
}

func (g GridLayout) validate() error {
	if g.Rows <= 0 || g.WordsPerRow <= 0 || g.SlotWidth <= 0 {
		return fmt.Errorf("%dx%d slots of %d: %w", g.Rows, g.WordsPerRow, g.SlotWidth, ErrInvalidGrid)
	}
	return nil
}

// Config is assembled once at startup from flags and an optional tuning
// profile, then treated as read-only by the pipeline.
type Config struct {
	// Gamma is applied to every frame before classification. Values below
	// 1.0 darken the frame, recovering hue from over-exposed LEDs.
	Gamma      float64
	Grid       GridLayout
	Thresholds classify.Thresholds

	// EmitUnknown renders unrecognized sequences as "?" instead of
	// dropping them from the decoded text.
	EmitUnknown bool

	// Acquisition and reporting knobs, unused by the pipeline itself.
	InputPath string
	DPI       int
	Workers   int
	FPS       int
	ShowStats bool
}

// Default returns the reference configuration: a 16x16 matrix split into
// two 8-cell words per row, gamma 0.4.
func Default() *Config {
	return &Config{
		Gamma:      0.4,
		Grid:       GridLayout{Rows: 16, WordsPerRow: 2, SlotWidth: 8},
		Thresholds: classify.DefaultThresholds(),
		DPI:        150,
		Workers:    runtime.NumCPU(),
		FPS:        10,
	}
}

// Validate rejects malformed configuration before any decode runs. A
// failed validation is fatal for the pass; nothing is retried.
func (c *Config) Validate() error {
	if c.Gamma <= 0 {
		return fmt.Errorf("gamma %g: %w", c.Gamma, ErrInvalidGamma)
	}
	if err := c.Grid.validate(); err != nil {
		return err
	}
	return c.Thresholds.Validate()
}
