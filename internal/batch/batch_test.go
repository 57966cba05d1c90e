package batch

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ivlev/ledmorse/internal/config"
	"github.com/ivlev/ledmorse/internal/matrixgen"
	"github.com/ivlev/ledmorse/internal/pipeline"
)

// fakeSource serves pre-rendered frames, optionally failing at one index.
type fakeSource struct {
	frames  []image.Image
	failAt  int
	renders atomic.Int32
}

func (s *fakeSource) FrameCount() int { return len(s.frames) }

func (s *fakeSource) FrameDimensions(index int) (float64, float64, error) {
	b := s.frames[index].Bounds()
	return float64(b.Dx()), float64(b.Dy()), nil
}

func (s *fakeSource) RenderFrame(index int, dpi int) (image.Image, error) {
	s.renders.Add(1)
	if index == s.failAt {
		return nil, errors.New("render exploded")
	}
	return s.frames[index], nil
}

func (s *fakeSource) Close() error { return nil }

func renderMessages(t *testing.T, cfg *config.Config, messages ...string) []image.Image {
	t.Helper()
	frames := make([]image.Image, len(messages))
	for i, msg := range messages {
		img, err := matrixgen.Generate(msg, cfg.Grid, 4)
		if err != nil {
			t.Fatalf("generate %q: %v", msg, err)
		}
		frames[i] = img
	}
	return frames
}

func TestRunDecodesInOrder(t *testing.T) {
	cfg := config.Default()
	dec, err := pipeline.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	messages := []string{"SOS", "HELLO", "CQ DX"}
	src := &fakeSource{frames: renderMessages(t, cfg, messages...), failAt: -1}

	r := &Runner{Source: src, Decoder: dec, Workers: 2}
	results, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(results) != len(messages) {
		t.Fatalf("got %d results, want %d", len(results), len(messages))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("result %d carries index %d", i, res.Index)
		}
		if res.Text != messages[i] {
			t.Errorf("frame %d decoded %q, want %q", i, res.Text, messages[i])
		}
	}
}

func TestRunPropagatesRenderError(t *testing.T) {
	cfg := config.Default()
	dec, err := pipeline.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	src := &fakeSource{frames: renderMessages(t, cfg, "A", "B", "C"), failAt: 1}
	r := &Runner{Source: src, Decoder: dec, Workers: 1}

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("want error from failing frame")
	} else if !strings.Contains(err.Error(), "frame 1") {
		t.Errorf("error should name the frame: %v", err)
	}
}

func TestRunEmptySource(t *testing.T) {
	cfg := config.Default()
	dec, err := pipeline.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	r := &Runner{Source: &fakeSource{failAt: -1}, Decoder: dec}
	if _, err := r.Run(context.Background()); err == nil {
		t.Error("want error for empty source")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cfg := config.Default()
	dec, err := pipeline.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{frames: renderMessages(t, cfg, "A", "B"), failAt: -1}
	r := &Runner{Source: src, Decoder: dec, Workers: 1}

	// A context cancelled before Run stops scheduling at the first check
	// and must not look like a successful all-blank decode.
	results, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if results != nil {
		t.Errorf("cancelled run returned %d results", len(results))
	}
	if n := src.renders.Load(); n != 0 {
		t.Errorf("pre-cancelled run rendered %d frames", n)
	}
}
