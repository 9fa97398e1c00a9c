package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// DefaultName is the profile used when none is requested.
const DefaultName = "chrome-web-store"

// Dim is a required pixel size.
type Dim struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dim) String() string { return fmt.Sprintf("%dx%d", d.Width, d.Height) }

// Asset is a single named file the store listing requires.
type Asset struct {
	File     string `json:"file"`
	Size     Dim    `json:"size"`
	Required bool   `json:"required"`
}

// Screenshots describes the screenshot set: files named
// <Prefix>*.<ext>, each matching one of Sizes, at least Min of them valid.
type Screenshots struct {
	Prefix     string   `json:"prefix"`
	Extensions []string `json:"extensions"`
	Sizes      []Dim    `json:"sizes"`
	Min        int      `json:"min"`
}

// Profile defines icon output sizes and store asset requirements for a
// target platform.
type Profile struct {
	Name        string      `json:"name"`
	Base        string      `json:"base,omitempty"`
	IconSizes   []int       `json:"icon_sizes"`
	Assets      []Asset     `json:"assets"`
	Screenshots Screenshots `json:"screenshots"`
}

// Built-in profiles.
var profiles = map[string]Profile{
	"chrome-web-store": {
		Name:      "chrome-web-store",
		IconSizes: []int{16, 48, 128},
		Assets: []Asset{
			{File: "store-icon-128.png", Size: Dim{128, 128}, Required: true},
			{File: "small-promo-440x280.png", Size: Dim{440, 280}, Required: true},
			{File: "marquee-promo-1400x560.png", Size: Dim{1400, 560}, Required: false},
		},
		Screenshots: Screenshots{
			Prefix:     "screenshot-",
			Extensions: []string{"png", "jpg", "jpeg"},
			Sizes:      []Dim{{1280, 800}, {640, 400}},
			Min:        1,
		},
	},
	"firefox-addons": {
		Name:      "firefox-addons",
		IconSizes: []int{32, 48, 64, 96, 128},
		Assets: []Asset{
			{File: "store-icon-128.png", Size: Dim{128, 128}, Required: true},
		},
		Screenshots: Screenshots{
			Prefix:     "screenshot-",
			Extensions: []string{"png", "jpg", "jpeg"},
			Sizes:      []Dim{{1280, 800}, {640, 400}},
			Min:        0,
		},
	},
	"icons-only": {
		Name:      "icons-only",
		IconSizes: []int{16, 32, 48, 128},
	},
}

// Get returns a profile by name. Falls back to chrome-web-store if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p.clone()
	}
	p := profiles[DefaultName].clone()
	p.Name = name // preserve requested name
	return p
}

// Names lists the built-in profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON seeds the receiver with the base profile named in the
// document (chrome-web-store if absent) and then decodes on top of it, so
// only fields present in the JSON override the base.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var head struct {
		Base string `json:"base"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	base := head.Base
	if base == "" {
		base = DefaultName
	}
	b, ok := profiles[base]
	if !ok {
		return fmt.Errorf("unknown base profile %q", base)
	}
	*p = b.clone()
	p.Base = base

	type alias Profile
	return json.Unmarshal(data, (*alias)(p))
}

// Load reads a JSON profile from path.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects sizes that could never be produced or matched.
func (p Profile) Validate() error {
	for _, s := range p.IconSizes {
		if s <= 0 {
			return fmt.Errorf("invalid icon size %d", s)
		}
	}
	for _, a := range p.Assets {
		if a.File == "" {
			return fmt.Errorf("asset with empty file name")
		}
		if a.Size.Width <= 0 || a.Size.Height <= 0 {
			return fmt.Errorf("asset %s: invalid size %s", a.File, a.Size)
		}
	}
	for _, d := range p.Screenshots.Sizes {
		if d.Width <= 0 || d.Height <= 0 {
			return fmt.Errorf("invalid screenshot size %s", d)
		}
	}
	if p.Screenshots.Min < 0 {
		return fmt.Errorf("invalid screenshot minimum %d", p.Screenshots.Min)
	}
	return nil
}

// EffectiveIconSizes returns IconSizes without duplicates, in order.
func (p Profile) EffectiveIconSizes() []int {
	seen := map[int]bool{}
	var result []int
	for _, s := range p.IconSizes {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}

func (p Profile) clone() Profile {
	p.IconSizes = append([]int(nil), p.IconSizes...)
	p.Assets = append([]Asset(nil), p.Assets...)
	p.Screenshots.Extensions = append([]string(nil), p.Screenshots.Extensions...)
	p.Screenshots.Sizes = append([]Dim(nil), p.Screenshots.Sizes...)
	return p
}
