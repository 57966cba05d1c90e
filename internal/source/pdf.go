package source

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// PDFSource treats every page of a document as one frame, for matrix
// photos archived inside PDFs.
type PDFSource struct {
	doc  *fitz.Document
	path string
}

func NewPDFSource(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDFSource{doc: doc, path: path}, nil
}

func (p *PDFSource) FrameCount() int {
	return p.doc.NumPage()
}

func (p *PDFSource) FrameDimensions(index int) (float64, float64, error) {
	rect, err := p.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

// RenderFrame rasterizes the page with its own fitz handle; the library
// is not safe for concurrent rendering on a shared document.
func (p *PDFSource) RenderFrame(index int, dpi int) (image.Image, error) {
	doc, err := fitz.New(p.path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()
	return doc.ImageDPI(index, float64(dpi))
}

func (p *PDFSource) Close() error {
	return p.doc.Close()
}
