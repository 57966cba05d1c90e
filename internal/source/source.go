// Package source supplies frames to the decoder: still images, PDF pages
// and MJPEG streams. The pipeline imposes no constraints beyond a positive
// frame size; it does its own downsampling.
package source

import (
	"image"
	"strings"
)

// Source delivers a finite set of frames (a file, a directory of images,
// the pages of a document).
type Source interface {
	FrameCount() int
	FrameDimensions(index int) (width, height float64, err error)
	RenderFrame(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a source implementation from the path extension. Anything
// that is not a PDF is treated as an image file or a directory of images.
func Open(path string) (Source, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return NewPDFSource(path)
	}
	return NewImageSource(path)
}
