package source

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{G: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMJPEGStreamSplitsFrames(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(encodeJPEG(t, 32, 16))
	stream.Write(encodeJPEG(t, 8, 8))

	var got []Frame
	for f := range NewMJPEGStream(&stream).Frames(context.Background()) {
		got = append(got, f)
	}

	if len(got) != 2 {
		t.Fatalf("received %d frames, want 2", len(got))
	}
	for i, f := range got {
		if f.Err != nil {
			t.Fatalf("frame %d error: %v", i, f.Err)
		}
	}
	if b := got[0].Image.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("frame 0 bounds = %v, want 32x16", b)
	}
	if b := got[1].Image.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("frame 1 bounds = %v, want 8x8", b)
	}
}

func TestMJPEGStreamEmptyInput(t *testing.T) {
	ch := NewMJPEGStream(bytes.NewReader(nil)).Frames(context.Background())
	if f, ok := <-ch; ok {
		t.Fatalf("empty stream yielded %v", f)
	}
}

func TestMJPEGStreamCorruptFrame(t *testing.T) {
	// A bare end-of-image marker with no JPEG body before it.
	ch := NewMJPEGStream(bytes.NewReader([]byte{0x00, 0xff, 0xd9})).Frames(context.Background())
	f, ok := <-ch
	if !ok || f.Err == nil {
		t.Fatalf("want decode error frame, got %v ok=%v", f, ok)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should close after error frame")
	}
}

func TestMJPEGStreamCancelReleasesProducer(t *testing.T) {
	// Two frames are buffered but the consumer walks away after the first.
	var stream bytes.Buffer
	stream.Write(encodeJPEG(t, 8, 8))
	stream.Write(encodeJPEG(t, 8, 8))

	ctx, cancel := context.WithCancel(context.Background())
	ch := NewMJPEGStream(&stream).Frames(ctx)

	if f, ok := <-ch; !ok || f.Err != nil {
		t.Fatalf("first frame: %v ok=%v", f, ok)
	}
	cancel()

	// The producer must close the channel instead of blocking on the
	// abandoned send.
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("frame channel never closed after cancel")
		}
	}
}
