// Package matrixgen renders text back into an LED-matrix image: red cells
// for dots, blue for dashes, unlit black elsewhere. It backs the selftest
// mode and the round-trip tests; it is the encoder the camera rig would
// drive.
package matrixgen

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/ivlev/ledmorse/internal/config"
	"github.com/ivlev/ledmorse/internal/morse"
)

var (
	dotColor  = color.NRGBA{R: 255, A: 255}
	dashColor = color.NRGBA{B: 255, A: 255}
	offColor  = color.NRGBA{A: 255}
)

// Generate renders the message onto the layout, one character per slot in
// row-major, slot-major order. Spaces become all-blank slots. The image is
// cellSize pixels per logical cell so downsampling back to the grid is
// exact. Fails if the message needs more slots than the layout has, if a
// character has no table entry, or if a sequence overflows the slot width.
func Generate(message string, layout config.GridLayout, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		cellSize = 1
	}

	slots, err := layoutSlots(message, layout)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, layout.Cols()*cellSize, layout.Rows*cellSize))
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			img.SetNRGBA(x, y, offColor)
		}
	}

	for i, seq := range slots {
		row := i / layout.WordsPerRow
		slot := i % layout.WordsPerRow
		for j, sym := range seq {
			c := dotColor
			if sym == '-' {
				c = dashColor
			}
			fillCell(img, (slot*layout.SlotWidth+j)*cellSize, row*cellSize, cellSize, c)
		}
	}

	return img, nil
}

func layoutSlots(message string, layout config.GridLayout) ([]string, error) {
	chars := strings.Split(strings.ToUpper(message), "")
	if len(chars) > layout.Slots() {
		return nil, fmt.Errorf("message needs %d slots, layout has %d", len(chars), layout.Slots())
	}

	slots := make([]string, len(chars))
	for i, ch := range chars {
		if ch == " " {
			continue
		}
		seq, ok := morse.SequenceOf(ch)
		if !ok {
			return nil, fmt.Errorf("no code table entry for %q", ch)
		}
		if len(seq) > layout.SlotWidth {
			return nil, fmt.Errorf("sequence %q for %q exceeds slot width %d", seq, ch, layout.SlotWidth)
		}
		slots[i] = seq
	}
	return slots, nil
}

func fillCell(img *image.NRGBA, x0, y0, size int, c color.NRGBA) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
