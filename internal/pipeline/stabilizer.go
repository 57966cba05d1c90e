package pipeline

import (
	"image"
	"time"
)

// Result is one stabilized decode emission in the live variant.
type Result struct {
	Timestamp time.Time
	Sequences []string
	Text      string
}

// Stabilizer deduplicates identical consecutive decodes. It is pure
// change detection on exact string equality; there is no voting or
// smoothing across frames. State lives for the process and is only
// reset by constructing a new value.
type Stabilizer struct {
	last string
}

// Observe compares the decoded text to the last emission. On change it
// records the new text and returns a timestamped Result; otherwise nil.
func (s *Stabilizer) Observe(sequences []string, text string) *Result {
	if text == s.last {
		return nil
	}
	s.last = text
	return &Result{
		Timestamp: time.Now(),
		Sequences: sequences,
		Text:      text,
	}
}

// DecodeStabilized wraps Decode with the decoder's stabilizer: it returns
// a Result only when the decoded text differs from the previous pass.
// Intended for the single-threaded acquire/decode/display loop; concurrent
// calls are not supported.
func (d *Decoder) DecodeStabilized(img image.Image) *Result {
	sequences, text := d.Decode(img)
	return d.stab.Observe(sequences, text)
}
