package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/AnyUserName/assetkit/internal/paths"
)

// New creates an empty manifest with defaults.
func New(profileName string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Icons:       []Icon{},
	}
}

// ComputeStats recalculates aggregate statistics from icons.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalIcons = len(m.Icons)
	for _, ic := range m.Icons {
		s.TotalBytes += ic.Bytes
		if ic.Unchanged {
			s.Unchanged++
		} else {
			s.Written++
		}
	}
	m.Stats = s
}

// WriteJSON serializes the manifest with icons sorted by size and
// replaces path atomically.
func WriteJSON(m *Manifest, path string) error {
	sort.Slice(m.Icons, func(i, j int) bool { return m.Icons[i].Size < m.Icons[j].Size })
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return paths.AtomicWrite(path, data)
}

// ReadJSON loads a manifest and rejects unsupported schema versions.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Version != SupportedManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d", m.Version)
	}
	return &m, nil
}
