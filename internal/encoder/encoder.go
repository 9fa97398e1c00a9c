package encoder

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidInput reports a RawImage that cannot be encoded: a zero
// dimension or a pixel buffer whose length is not Width*Height*4.
var ErrInvalidInput = errors.New("invalid input")

// BytesPerPixel is the channel count of a RawImage (R, G, B, A).
const BytesPerPixel = 4

// RawImage is a flat 8-bit RGBA pixel buffer. The first channel of
// pixel (x, y) lives at Pix[(y*Width+x)*4].
type RawImage struct {
	Width  int
	Height int
	Pix    []byte
}

// NewRawImage allocates a fully transparent w×h image.
func NewRawImage(w, h int) *RawImage {
	return &RawImage{Width: w, Height: h, Pix: make([]byte, w*h*BytesPerPixel)}
}

// Stride returns the number of bytes in one row.
func (m *RawImage) Stride() int { return m.Width * BytesPerPixel }

// Validate checks the RawImage invariants.
func (m *RawImage) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidInput, m.Width, m.Height)
	}
	// PNG stores dimensions as 31-bit unsigned integers.
	if m.Width > 1<<31-1 || m.Height > 1<<31-1 {
		return fmt.Errorf("%w: dimensions %dx%d exceed PNG limits", ErrInvalidInput, m.Width, m.Height)
	}
	if want := m.Width * m.Height * BytesPerPixel; len(m.Pix) != want {
		return fmt.Errorf("%w: expected %d bytes for %dx%d RGBA, got %d",
			ErrInvalidInput, want, m.Width, m.Height, len(m.Pix))
	}
	return nil
}

// FromNRGBA converts img to a RawImage. The pixel buffer is shared when
// img is tightly packed and origin-aligned; otherwise rows are copied.
func FromNRGBA(img *image.NRGBA) *RawImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	stride := w * BytesPerPixel
	if b.Min == (image.Point{}) && img.Stride == stride && len(img.Pix) == stride*h {
		return &RawImage{Width: w, Height: h, Pix: img.Pix}
	}

	out := NewRawImage(w, h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out.Pix[y*stride:(y+1)*stride], img.Pix[off:off+stride])
	}
	return out
}
