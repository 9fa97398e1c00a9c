package storecheck

import (
	"path/filepath"
	"sort"

	"github.com/AnyUserName/assetkit/internal/profile"
)

// ScanScreenshots returns every file in root named <Prefix>*.<ext> for the
// configured extensions, sorted by path. Matching is case-sensitive.
func ScanScreenshots(root string, s profile.Screenshots) ([]string, error) {
	seen := map[string]bool{}
	var found []string
	for _, ext := range s.Extensions {
		pattern := filepath.Join(escapeGlob(root), escapeGlob(s.Prefix)+"*."+escapeGlob(ext))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	sort.Strings(found)
	return found, nil
}

// escapeGlob quotes pattern metacharacters so s matches literally.
func escapeGlob(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[', '\\':
			if filepath.Separator != '\\' {
				out = append(out, '\\')
			}
		}
		out = append(out, r)
	}
	return string(out)
}
