// Package pipeline implements the frame-to-text decoding pass: gamma
// normalization, grid sampling, per-cell classification, sequence assembly
// and code table lookup. A pass is a single synchronous computation with
// no I/O; frame acquisition and display live in the callers.
package pipeline

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ivlev/ledmorse/internal/classify"
	"github.com/ivlev/ledmorse/internal/config"
	"github.com/ivlev/ledmorse/internal/morse"
)

// Decoder runs decode passes against one fixed configuration. Retuning
// means building a new Decoder; an existing one never changes behavior
// mid-stream.
type Decoder struct {
	cfg        *config.Config
	classifier *classify.Classifier
	stab       Stabilizer
}

// New validates the configuration and builds a decoder. Malformed
// configuration is the only error this package ever returns.
func New(cfg *config.Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{
		cfg:        cfg,
		classifier: classify.NewClassifier(cfg.Thresholds),
	}, nil
}

// Normalize applies the configured gamma curve to the frame. Gamma 1.0 is
// the identity and returns the frame untouched.
func Normalize(img image.Image, gamma float64) image.Image {
	if gamma == 1.0 {
		return img
	}
	return imaging.AdjustGamma(img, gamma)
}

// Symbols normalizes the frame, downsamples it onto the logical grid with
// a box (area-averaging) filter and classifies every cell. Classification
// always happens after resizing, never on raw pixels.
func (d *Decoder) Symbols(img image.Image) [][]classify.Symbol {
	grid := d.cfg.Grid
	resized := imaging.Resize(Normalize(img, d.cfg.Gamma), grid.Cols(), grid.Rows, imaging.Box)

	rows := make([][]classify.Symbol, grid.Rows)
	for y := 0; y < grid.Rows; y++ {
		row := make([]classify.Symbol, grid.Cols())
		for x := 0; x < grid.Cols(); x++ {
			row[x] = d.classifier.Classify(resized.NRGBAAt(x, y))
		}
		rows[y] = row
	}
	return rows
}

// Decode runs one full pass and returns the per-slot sequences in
// row-major, slot-major order together with the assembled text. The
// sequence count is always Grid.Slots(), whatever the frame contains.
func (d *Decoder) Decode(img image.Image) (sequences []string, text string) {
	return d.assemble(d.Symbols(img))
}

func (d *Decoder) assemble(rows [][]classify.Symbol) ([]string, string) {
	grid := d.cfg.Grid
	sequences := make([]string, 0, grid.Slots())
	var out strings.Builder

	for _, row := range rows {
		for slot := 0; slot < grid.WordsPerRow; slot++ {
			var seq strings.Builder
			start := slot * grid.SlotWidth
			for _, sym := range row[start : start+grid.SlotWidth] {
				seq.WriteString(sym.String())
			}

			sequence := strings.TrimSpace(seq.String())
			sequences = append(sequences, sequence)

			// An all-blank slot marks a word gap; unrecognized slots are
			// dropped unless configured to surface as the unknown marker.
			switch token := morse.Translate(sequence); {
			case sequence == "":
				out.WriteString(" ")
			case token != morse.Unknown:
				out.WriteString(token)
			case d.cfg.EmitUnknown:
				out.WriteString(morse.Unknown)
			}
		}
	}

	return sequences, strings.TrimSpace(out.String())
}
