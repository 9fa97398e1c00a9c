// Package icon renders square extension icons, either from the built-in
// bookmark glyph or by resampling a source artwork file.
package icon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	// Artwork may be supplied in any of these formats in addition to the
	// ones imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Palette used by Draw.
var (
	Background = color.NRGBA{R: 14, G: 165, B: 233, A: 255}
	Panel      = color.NRGBA{R: 3, G: 17, B: 36, A: 255}
	Accent     = color.NRGBA{R: 224, G: 242, B: 254, A: 255}
)

// Draw paints the bookmark glyph at size×size: a rounded-square
// background, a dark inner panel and a light bookmark with a V notch cut
// into its bottom edge. Pixels outside the background corners stay
// transparent.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	roundedSquare(img, size, max(2, size/7), Background)

	margin := max(2, size/6)
	fill(img, image.Rect(margin, margin, size-margin, size-margin), Panel)

	bw := max(4, size/4)
	bh := max(6, size/2)
	x0 := size/2 - bw/2
	y0 := size / 4
	fill(img, image.Rect(x0, y0, x0+bw, y0+bh), Accent)

	notch := max(2, bw/2)
	for i := 0; i < notch; i++ {
		y := y0 + bh - i - 1
		img.SetNRGBA(x0+i, y, Panel)
		img.SetNRGBA(x0+bw-i-1, y, Panel)
	}
	return img
}

// roundedSquare paints every pixel within radius of the nearest corner
// centre, where corner centres are the pixel coordinates clamped to
// [radius, size-radius-1].
func roundedSquare(img *image.NRGBA, size, radius int, c color.NRGBA) {
	r2 := radius * radius
	for y := 0; y < size; y++ {
		cy := clampCorner(y, size, radius)
		for x := 0; x < size; x++ {
			cx := clampCorner(x, size, radius)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func clampCorner(v, size, radius int) int {
	switch {
	case v < radius:
		return radius
	case v >= size-radius:
		return size - radius - 1
	default:
		return v
	}
}

// fill paints r, clipped to the image bounds. Empty or inverted
// rectangles paint nothing.
func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// FromArtwork loads the image at path and scales it to fill a size×size
// square, cropping the longer axis around the centre.
func FromArtwork(path string, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artwork %s: %w", path, err)
	}
	return imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos), nil
}
