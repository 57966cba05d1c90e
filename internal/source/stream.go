package source

import (
	"bufio"
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
)

// Frame is one decoded frame from a live stream, or the error that ended
// the stream.
type Frame struct {
	Image image.Image
	Err   error
}

// MJPEGStream splits a concatenated-JPEG byte stream into frames. It is
// the live counterpart of Source: frames arrive until the reader ends.
type MJPEGStream struct {
	r io.Reader
}

func NewMJPEGStream(r io.Reader) *MJPEGStream {
	return &MJPEGStream{r: r}
}

// Frames decodes JPEGs off the reader and delivers them in order. The
// channel closes on EOF or when the context is canceled; any other
// failure is delivered as the final Frame before closing. A consumer
// that stops receiving must cancel the context, or the producer stays
// blocked on the send.
func (s *MJPEGStream) Frames(ctx context.Context) <-chan Frame {
	frames := make(chan Frame)
	go func() {
		defer close(frames)

		send := func(f Frame) bool {
			select {
			case frames <- f:
				return true
			case <-ctx.Done():
				return false
			}
		}

		br := bufio.NewReader(s.r)
		var buf bytes.Buffer
		prev := byte(0)
		for ctx.Err() == nil {
			b, err := br.ReadByte()
			if err != nil {
				if err != io.EOF {
					send(Frame{Err: err})
				}
				return
			}
			buf.WriteByte(b)

			// JPEG end-of-image marker closes the current frame.
			if prev == 0xff && b == 0xd9 {
				img, err := jpeg.Decode(&buf)
				if err != nil {
					send(Frame{Err: err})
					return
				}
				if !send(Frame{Image: img}) {
					return
				}
				buf.Reset()
				prev = 0
				continue
			}
			prev = b
		}
	}()
	return frames
}
