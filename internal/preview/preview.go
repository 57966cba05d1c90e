// Package preview renders the classified logical grid as ANSI color cells,
// the terminal stand-in for the original on-screen matrix view. Decoding
// never depends on a preview write succeeding.
package preview

import (
	"fmt"
	"io"

	"github.com/ivlev/ledmorse/internal/classify"
)

const (
	dotCell   = "\033[41m  \033[0m" // red background
	dashCell  = "\033[44m  \033[0m" // blue background
	blankCell = "\033[40m  \033[0m"
)

// Renderer writes grid frames to a terminal.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Draw prints one cell row per grid row, two columns per cell.
func (r *Renderer) Draw(rows [][]classify.Symbol) {
	for _, row := range rows {
		for _, sym := range row {
			switch sym {
			case classify.Dot:
				fmt.Fprint(r.w, dotCell)
			case classify.Dash:
				fmt.Fprint(r.w, dashCell)
			default:
				fmt.Fprint(r.w, blankCell)
			}
		}
		fmt.Fprintln(r.w)
	}
}

// Redraw moves the cursor back over the previous frame and draws the new
// one in place, for the live loop.
func (r *Renderer) Redraw(rows [][]classify.Symbol) {
	fmt.Fprintf(r.w, "\033[999D\033[%dA", len(rows))
	r.Draw(rows)
}

// ShowCursor toggles terminal cursor visibility around live playback.
func (r *Renderer) ShowCursor(show bool) {
	if show {
		fmt.Fprint(r.w, "\033[?12l\033[?25h")
	} else {
		fmt.Fprint(r.w, "\033[?25l")
	}
}
