package icon

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDrawSizes(t *testing.T) {
	for _, size := range []int{16, 48, 128} {
		img := Draw(size)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("size %d: bounds %v", size, b)
		}
		if img.Stride != size*4 {
			t.Errorf("size %d: stride %d", size, img.Stride)
		}
	}
}

func TestDrawLayers(t *testing.T) {
	const size = 128
	img := Draw(size)

	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner should be transparent, got %v", got)
	}
	if got := img.NRGBAAt(size/2, 2); got != Background {
		t.Errorf("top edge: got %v, want background %v", got, Background)
	}
	margin := size / 6
	if got := img.NRGBAAt(margin+1, margin+1); got != Panel {
		t.Errorf("panel: got %v, want %v", got, Panel)
	}
	// The bookmark starts at y = size/4; its centre column is accent there.
	if got := img.NRGBAAt(size/2, size/4+2); got != Accent {
		t.Errorf("bookmark: got %v, want %v", got, Accent)
	}
}

func TestDrawNotch(t *testing.T) {
	const size = 48
	img := Draw(size)

	bw, bh := size/4, size/2
	x0, y0 := size/2-bw/2, size/4
	bottom := y0 + bh - 1

	if got := img.NRGBAAt(x0, bottom); got != Panel {
		t.Errorf("left notch corner: got %v, want panel", got)
	}
	if got := img.NRGBAAt(x0+bw-1, bottom); got != Panel {
		t.Errorf("right notch corner: got %v, want panel", got)
	}
	if got := img.NRGBAAt(x0, y0); got != Accent {
		t.Errorf("top-left of bookmark: got %v, want accent", got)
	}
}

func TestDrawTinyClamps(t *testing.T) {
	// Minimum glyph dimensions exceed a 4px canvas; drawing must not panic.
	img := Draw(4)
	if img.Bounds().Dx() != 4 {
		t.Fatalf("bounds: %v", img.Bounds())
	}
	if Draw(0).Bounds().Dx() != 0 {
		t.Error("zero size should produce an empty image")
	}
}

func TestFromArtwork(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 300; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	p := filepath.Join(t.TempDir(), "art.png")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := FromArtwork(p, 48)
	if err != nil {
		t.Fatalf("FromArtwork: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Fatalf("bounds: %v", b)
	}
	if got := img.NRGBAAt(24, 24); got.R < 190 || got.A != 255 {
		t.Errorf("centre pixel: got %v", got)
	}
}

func TestFromArtworkMissing(t *testing.T) {
	if _, err := FromArtwork(filepath.Join(t.TempDir(), "nope.png"), 16); err == nil {
		t.Error("expected error for missing artwork")
	}
}
