package manifest

// Manifest is the top-level output of an icons build.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Profile     string     `json:"profile"`
	BuildInfo   *BuildInfo `json:"build_info,omitempty"`
	Icons       []Icon     `json:"icons"`
	Stats       Stats      `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers int    `json:"workers"`
	Source  string `json:"source"`            // "glyph" or "artwork"
	Artwork string `json:"artwork,omitempty"` // artwork path when Source is "artwork"
}

// Icon describes one generated square icon.
type Icon struct {
	Size      int    `json:"size"`
	Path      string `json:"path"` // relative to the manifest directory
	Bytes     int64  `json:"bytes"`
	Hash      string `json:"hash"` // first 16 hex chars of xxhash64
	Unchanged bool   `json:"unchanged,omitempty"`
}

// Stats aggregates build metrics.
type Stats struct {
	TotalIcons int   `json:"total_icons"`
	TotalBytes int64 `json:"total_bytes"`
	Written    int   `json:"written"`
	Unchanged  int   `json:"unchanged"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest's name inside the output directory.
const FileName = "icons.manifest.json"
