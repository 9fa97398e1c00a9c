//go:build ignore

// gen_fixtures creates a store-assets directory for the validate smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/AnyUserName/assetkit/internal/encoder"
	"github.com/AnyUserName/assetkit/internal/icon"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	writePNG(filepath.Join(dir, "store-icon-128.png"), encoder.FromNRGBA(icon.Draw(128)))
	writePNG(filepath.Join(dir, "small-promo-440x280.png"), gradient(440, 280))
	writeJPEG(filepath.Join(dir, "screenshot-1.jpg"), 1280, 800)
	writePNG(filepath.Join(dir, "screenshot-2.png"), gradient(640, 400))

	// Wrong size on purpose: validate must report it.
	writePNG(filepath.Join(dir, "screenshot-3.png"), gradient(800, 600))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

func gradient(w, h int) *encoder.RawImage {
	img := encoder.NewRawImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			img.Pix[i] = uint8(x * 255 / w)
			img.Pix[i+1] = uint8(y * 255 / h)
			img.Pix[i+2] = 128
			img.Pix[i+3] = 255
		}
	}
	return img
}

func writePNG(path string, img *encoder.RawImage) {
	if err := encoder.WriteFile(path, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, w, h int) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: 90, B: uint8(y * 255 / h), A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		panic(err)
	}
}
