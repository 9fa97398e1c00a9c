package storecheck

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/AnyUserName/assetkit/internal/profile"
)

// Report is the ordered outcome of validating a directory.
type Report struct {
	Root    string
	Profile string
	Results []Result
}

// Failed counts FAIL results.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == Fail {
			n++
		}
	}
	return n
}

// OK reports whether no check failed.
func (r *Report) OK() bool { return r.Failed() == 0 }

// Run validates root against prof. Dimension lookups run on up to workers
// goroutines; results keep the profile's order with screenshots last.
func Run(root string, prof profile.Profile, workers int) (*Report, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	shots, err := ScanScreenshots(root, prof.Screenshots)
	if err != nil {
		return nil, fmt.Errorf("scan screenshots: %w", err)
	}

	lookups := make([]lookup, len(shots))
	assets := make([]Result, len(prof.Assets))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	spawn := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release
			fn()
		}()
	}

	for i, a := range prof.Assets {
		spawn(func() { assets[i] = Check(filepath.Join(root, a.File), a.Size, a.Required) })
	}
	for i, p := range shots {
		spawn(func() { lookups[i] = probe(p) })
	}
	wg.Wait()

	rep := &Report{Root: root, Profile: prof.Name}
	rep.Results = append(rep.Results, assets...)
	rep.Results = append(rep.Results, screenshotResults(shots, lookups, prof.Screenshots)...)
	return rep, nil
}

func screenshotResults(paths []string, lookups []lookup, s profile.Screenshots) []Result {
	pattern := s.Prefix + "*"
	if len(paths) == 0 {
		if s.Min <= 0 {
			return []Result{{Warn, "", fmt.Sprintf("no %s asset found (optional)", pattern)}}
		}
		return []Result{{Fail, "", fmt.Sprintf("no %s asset found (need at least %s)", pattern, count(s.Min))}}
	}

	var out []Result
	ok := 0
	for i, p := range paths {
		r := verdict(filepath.Base(p), lookups[i], s.Sizes)
		if r.Status == Pass {
			ok++
		}
		out = append(out, r)
	}

	switch {
	case ok == 0 && s.Min > 0:
		out = append(out, Result{Fail, "", "screenshots exist but none match required dimensions"})
	case ok < s.Min:
		out = append(out, Result{Fail, "", fmt.Sprintf("only %d screenshots match required dimensions, need %d", ok, s.Min)})
	}
	return out
}

func count(n int) string {
	if n == 1 {
		return "one"
	}
	return fmt.Sprint(n)
}
