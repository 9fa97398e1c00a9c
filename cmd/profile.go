package cmd

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/assetkit/internal/profile"
)

// resolveProfile returns the profile from --profile-file when given,
// otherwise the built-in named by --profile.
func resolveProfile(name, file string) (profile.Profile, error) {
	if file != "" {
		p, err := profile.Load(file)
		if err != nil {
			return profile.Profile{}, err
		}
		logVerbose("profile: %s (from %s)", p.Name, file)
		return p, nil
	}
	known := false
	for _, n := range profile.Names() {
		if n == name {
			known = true
		}
	}
	if !known {
		return profile.Profile{}, fmt.Errorf("unknown profile %q (available: %s)",
			name, strings.Join(profile.Names(), ", "))
	}
	logVerbose("profile: %s", name)
	return profile.Get(name), nil
}
