package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/assetkit/internal/manifest"
	"github.com/AnyUserName/assetkit/internal/profile"
)

// Config holds all parameters for an icons pipeline run.
type Config struct {
	OutputDir string
	Profile   profile.Profile
	Sizes     []int  // overrides Profile.IconSizes when non-empty
	Artwork   string // source image to resample; empty draws the glyph
	Workers   int
	Verbose   bool
	Force     bool // rewrite icons even when content is unchanged
}

// Pipeline renders, encodes and writes a set of icons.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

func (p *Pipeline) sizes() []int {
	if len(p.cfg.Sizes) > 0 {
		return profile.Profile{IconSizes: p.cfg.Sizes}.EffectiveIconSizes()
	}
	return p.cfg.Profile.EffectiveIconSizes()
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[assetkit] "+format+"\n", args...)
	}
}

// Run renders every configured size and returns the manifest describing
// the written files. It fails only when no icon could be produced.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	sizes := p.sizes()
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no icon sizes configured")
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("invalid icon size %d", s)
		}
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	source := "glyph"
	if p.cfg.Artwork != "" {
		source = "artwork"
	}
	p.logf("rendering %d icons from %s", len(sizes), source)

	results := make([]processResult, len(sizes))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, size := range sizes {
		wg.Add(1)
		go func(idx, s int) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = processIcon(s, p.cfg)

			if r := results[idx]; r.err == nil {
				if r.icon.Unchanged {
					p.logf("unchanged: %s", r.icon.Path)
				} else {
					p.logf("wrote: %s (%d bytes)", r.icon.Path, r.icon.Bytes)
				}
			}
		}(i, size)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name)
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Icons = append(m.Icons, r.icon)
	}

	// Report errors but don't fail the entire build for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[assetkit] error: %v\n", e)
		}
		if len(errs) == len(sizes) {
			return nil, fmt.Errorf("all %d icons failed", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[assetkit] warning: %d of %d icons had errors\n",
			len(errs), len(sizes))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers: p.cfg.Workers,
		Source:  source,
		Artwork: p.cfg.Artwork,
	}
	m.ComputeStats()
	return m, nil
}
