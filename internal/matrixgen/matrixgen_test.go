package matrixgen

import (
	"image"
	"testing"

	"github.com/ivlev/ledmorse/internal/config"
)

func TestGenerateDimensions(t *testing.T) {
	layout := config.Default().Grid

	img, err := Generate("SOS", layout, 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := image.Rect(0, 0, layout.Cols()*10, layout.Rows*10)
	if img.Bounds() != want {
		t.Errorf("bounds = %v, want %v", img.Bounds(), want)
	}
}

func TestGenerateCellColors(t *testing.T) {
	layout := config.GridLayout{Rows: 1, WordsPerRow: 1, SlotWidth: 8}

	// A is .- so cell 0 is red, cell 1 blue, the rest unlit.
	img, err := Generate("A", layout, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	nrgba := img.(*image.NRGBA)

	checks := []struct {
		cell    int
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{1, 0, 0, 255},
		{2, 0, 0, 0},
		{7, 0, 0, 0},
	}
	for _, c := range checks {
		// Sample the center pixel of the cell.
		px := nrgba.NRGBAAt(c.cell*4+2, 2)
		if px.R != c.r || px.G != c.g || px.B != c.b {
			t.Errorf("cell %d = %v, want rgb(%d,%d,%d)", c.cell, px, c.r, c.g, c.b)
		}
		if px.A != 255 {
			t.Errorf("cell %d alpha = %d, want opaque", c.cell, px.A)
		}
	}
}

func TestGenerateLowercaseAndSpace(t *testing.T) {
	layout := config.GridLayout{Rows: 1, WordsPerRow: 4, SlotWidth: 8}

	img, err := Generate("a b", layout, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	nrgba := img.(*image.NRGBA)

	// Slot 1 holds the space: all eight cells dark.
	for x := 8; x < 16; x++ {
		if px := nrgba.NRGBAAt(x, 0); px.R != 0 || px.G != 0 || px.B != 0 {
			t.Fatalf("space slot lit at x=%d: %v", x, px)
		}
	}
	// Slot 2 holds B (-...): leading dash is blue.
	if px := nrgba.NRGBAAt(16, 0); px.B != 255 {
		t.Errorf("slot 2 cell 0 = %v, want dash", px)
	}
}

func TestGenerateErrors(t *testing.T) {
	small := config.GridLayout{Rows: 1, WordsPerRow: 2, SlotWidth: 8}

	cases := []struct {
		name    string
		message string
		layout  config.GridLayout
	}{
		{"too long", "ABC", small},
		{"no table entry", "#", small},
		{"sequence overflows slot", "0", config.GridLayout{Rows: 1, WordsPerRow: 1, SlotWidth: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(tc.message, tc.layout, 2); err == nil {
				t.Errorf("Generate(%q) succeeded, want error", tc.message)
			}
		})
	}
}
