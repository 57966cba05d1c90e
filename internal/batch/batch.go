// Package batch decodes every frame of a finite source in parallel.
// Decode passes are independent, so frames fan out over a bounded worker
// group and results keep source order.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/ledmorse/internal/pipeline"
	"github.com/ivlev/ledmorse/internal/source"
)

// FrameResult is the decode outcome for one source frame.
type FrameResult struct {
	Index     int
	Sequences []string
	Text      string
}

// Runner binds a source to a decoder.
type Runner struct {
	Source  source.Source
	Decoder *pipeline.Decoder
	DPI     int
	Workers int
}

// Run decodes all frames and returns results indexed by frame. The first
// render failure cancels the remaining work.
func (r *Runner) Run(ctx context.Context) ([]FrameResult, error) {
	count := r.Source.FrameCount()
	if count == 0 {
		return nil, fmt.Errorf("source contains no frames")
	}

	workers := r.Workers
	if workers < 1 || workers > count {
		workers = count
	}

	results := make([]FrameResult, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			img, err := r.Source.RenderFrame(i, r.DPI)
			if err != nil {
				return fmt.Errorf("render frame %d: %w", i, err)
			}
			sequences, text := r.Decoder.Decode(img)
			results[i] = FrameResult{Index: i, Sequences: sequences, Text: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation can stop scheduling without any goroutine failing;
	// never hand back zero-value results as a successful decode.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
