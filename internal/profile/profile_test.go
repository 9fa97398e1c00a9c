package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefault(t *testing.T) {
	p := Get(DefaultName)
	if len(p.IconSizes) != 3 || p.IconSizes[0] != 16 || p.IconSizes[2] != 128 {
		t.Errorf("icon sizes: got %v", p.IconSizes)
	}
	if len(p.Assets) != 3 {
		t.Fatalf("assets: got %d", len(p.Assets))
	}
	if p.Assets[2].Required {
		t.Error("marquee promo should be optional")
	}
	if p.Screenshots.Min != 1 || len(p.Screenshots.Sizes) != 2 {
		t.Errorf("screenshots: got %+v", p.Screenshots)
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	p := Get("my-store")
	if p.Name != "my-store" {
		t.Errorf("name: got %q", p.Name)
	}
	if len(p.Assets) != 3 {
		t.Errorf("assets: got %d, want chrome-web-store fallback", len(p.Assets))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	p := Get(DefaultName)
	p.IconSizes[0] = 999
	p.Assets[0].File = "changed"
	q := Get(DefaultName)
	if q.IconSizes[0] != 16 || q.Assets[0].File != "store-icon-128.png" {
		t.Error("mutating a returned profile changed the built-in")
	}
}

func TestLoadOverridesBase(t *testing.T) {
	p := filepath.Join(t.TempDir(), "profile.json")
	raw := `{
		"name": "custom",
		"base": "icons-only",
		"icon_sizes": [19, 38]
	}`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	prof, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prof.Name != "custom" || prof.Base != "icons-only" {
		t.Errorf("name/base: got %q/%q", prof.Name, prof.Base)
	}
	if len(prof.IconSizes) != 2 || prof.IconSizes[1] != 38 {
		t.Errorf("icon sizes: got %v", prof.IconSizes)
	}
	if len(prof.Assets) != 0 {
		t.Errorf("assets should come from icons-only base, got %v", prof.Assets)
	}
}

func TestLoadDefaultsToChromeBase(t *testing.T) {
	p := filepath.Join(t.TempDir(), "profile.json")
	raw := `{"name": "strict-shots", "screenshots": {"prefix": "shot-", "extensions": ["png"], "sizes": [{"width": 1280, "height": 800}], "min": 2}}`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	prof, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(prof.Assets) != 3 {
		t.Errorf("assets: got %d, want chrome-web-store defaults", len(prof.Assets))
	}
	if prof.Screenshots.Prefix != "shot-" || prof.Screenshots.Min != 2 {
		t.Errorf("screenshots: got %+v", prof.Screenshots)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown base": `{"base": "nope"}`,
		"bad size":     `{"icon_sizes": [16, 0]}`,
		"bad asset":    `{"assets": [{"file": "x.png", "size": {"width": 0, "height": 10}}]}`,
		"not json":     `icon_sizes: 16`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "profile.json")
			if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(p); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEffectiveIconSizesDedup(t *testing.T) {
	p := Profile{IconSizes: []int{16, 48, 16, 128, 48}}
	got := p.EffectiveIconSizes()
	want := []int{16, 48, 128}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
