// Package storecheck verifies that a directory of store listing assets
// has the files and pixel dimensions a profile requires.
package storecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/assetkit/internal/imgsize"
	"github.com/AnyUserName/assetkit/internal/profile"
)

// Status is the verdict of a single check.
type Status string

const (
	Pass Status = "PASS"
	Fail Status = "FAIL"
	Warn Status = "WARN"
)

// Result is one line of a validation report.
type Result struct {
	Status Status
	Name   string // base name of the checked file, empty for set-level checks
	Detail string
}

// String renders the result as "STATUS: detail".
func (r Result) String() string { return string(r.Status) + ": " + r.Detail }

// lookup is a dimension query result.
type lookup struct {
	size imgsize.Size
	err  error
}

func probe(path string) lookup {
	s, err := imgsize.Dimensions(path)
	return lookup{size: s, err: err}
}

// Check verifies a single required or optional asset.
func Check(path string, want profile.Dim, required bool) Result {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()):
		if required {
			return Result{Fail, name, name + " missing"}
		}
		return Result{Warn, name, name + " missing (optional)"}
	case err != nil:
		return Result{Fail, name, fmt.Sprintf("%s unreadable: %v", name, err)}
	}

	return verdict(name, probe(path), []profile.Dim{want})
}

// verdict compares a lookup against the allowed sizes.
func verdict(name string, l lookup, allowed []profile.Dim) Result {
	if errors.Is(l.err, imgsize.ErrNotRecognized) {
		return Result{Fail, name, name + " unsupported format"}
	}
	if l.err != nil {
		return Result{Fail, name, fmt.Sprintf("%s unreadable: %v", name, l.err)}
	}
	for _, d := range allowed {
		if l.size.Width == d.Width && l.size.Height == d.Height {
			return Result{Pass, name, fmt.Sprintf("%s (%s)", name, l.size)}
		}
	}
	return Result{Fail, name, fmt.Sprintf("%s is %s, expected %s", name, l.size, joinDims(allowed))}
}

func joinDims(ds []profile.Dim) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " or ")
}
