package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/assetkit/internal/imgsize"
	"github.com/AnyUserName/assetkit/internal/profile"
)

func TestRunWritesProfileIcons(t *testing.T) {
	out := t.TempDir()
	m, err := New(Config{OutputDir: out, Profile: profile.Get(profile.DefaultName), Workers: 2}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.Icons) != 3 {
		t.Fatalf("icons: got %d, want 3", len(m.Icons))
	}
	for _, ic := range m.Icons {
		p := filepath.Join(out, ic.Path)
		got, err := imgsize.Dimensions(p)
		if err != nil {
			t.Fatalf("%s: %v", ic.Path, err)
		}
		if got != (imgsize.Size{Width: ic.Size, Height: ic.Size}) {
			t.Errorf("%s: got %v, want %dx%d", ic.Path, got, ic.Size, ic.Size)
		}
		info, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != ic.Bytes {
			t.Errorf("%s: manifest bytes %d, disk %d", ic.Path, ic.Bytes, info.Size())
		}
		if ic.Unchanged {
			t.Errorf("%s: first run marked unchanged", ic.Path)
		}
	}
	if m.BuildInfo == nil || m.BuildInfo.Source != "glyph" {
		t.Errorf("build info: %+v", m.BuildInfo)
	}
	if m.Stats.Written != 3 {
		t.Errorf("stats.written: got %d", m.Stats.Written)
	}
}

func TestRunSecondPassUnchanged(t *testing.T) {
	out := t.TempDir()
	cfg := Config{OutputDir: out, Profile: profile.Get(profile.DefaultName), Sizes: []int{16, 32}}

	if _, err := New(cfg).Run(); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(filepath.Join(out, "icon32.png"))
	if err != nil {
		t.Fatal(err)
	}

	m, err := New(cfg).Run()
	if err != nil {
		t.Fatal(err)
	}
	for _, ic := range m.Icons {
		if !ic.Unchanged {
			t.Errorf("%s: expected unchanged on second run", ic.Path)
		}
	}
	after, _ := os.Stat(filepath.Join(out, "icon32.png"))
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unchanged icon was rewritten")
	}

	cfg.Force = true
	m, err = New(cfg).Run()
	if err != nil {
		t.Fatal(err)
	}
	if m.Stats.Written != 2 {
		t.Errorf("forced run: written %d, want 2", m.Stats.Written)
	}
}

func TestRunFromArtwork(t *testing.T) {
	art := filepath.Join(t.TempDir(), "art.png")
	src := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	f, err := os.Create(art)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := t.TempDir()
	m, err := New(Config{OutputDir: out, Sizes: []int{48}, Artwork: art}).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.BuildInfo.Source != "artwork" || m.BuildInfo.Artwork != art {
		t.Errorf("build info: %+v", m.BuildInfo)
	}
	got, err := imgsize.Dimensions(filepath.Join(out, "icon48.png"))
	if err != nil {
		t.Fatal(err)
	}
	if got != (imgsize.Size{Width: 48, Height: 48}) {
		t.Errorf("got %v", got)
	}
}

func TestRunAllFailed(t *testing.T) {
	cfg := Config{
		OutputDir: t.TempDir(),
		Sizes:     []int{16, 48},
		Artwork:   filepath.Join(t.TempDir(), "missing.png"),
	}
	if _, err := New(cfg).Run(); err == nil {
		t.Error("expected error when every icon fails")
	}
}

func TestRunRejectsBadSizes(t *testing.T) {
	if _, err := New(Config{OutputDir: t.TempDir(), Sizes: []int{16, -1}}).Run(); err == nil {
		t.Error("expected error for negative size")
	}
	if _, err := New(Config{OutputDir: t.TempDir(), Profile: profile.Get("icons-only"), Sizes: nil}).Run(); err != nil {
		t.Errorf("icons-only profile: %v", err)
	}
	if _, err := New(Config{OutputDir: t.TempDir()}).Run(); err == nil {
		t.Error("expected error with no sizes")
	}
}
