package pipeline

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/AnyUserName/assetkit/internal/encoder"
	"github.com/AnyUserName/assetkit/internal/hasher"
	"github.com/AnyUserName/assetkit/internal/icon"
	"github.com/AnyUserName/assetkit/internal/manifest"
	"github.com/AnyUserName/assetkit/internal/paths"
)

// processResult holds the result of producing a single icon.
type processResult struct {
	icon manifest.Icon
	err  error
}

// FileName returns the output name for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// processIcon renders one size, encodes it and writes it unless an
// identical file is already present.
func processIcon(size int, cfg Config) processResult {
	name := FileName(size)
	result := processResult{icon: manifest.Icon{Size: size, Path: name}}

	var img *image.NRGBA
	if cfg.Artwork != "" {
		var err error
		img, err = icon.FromArtwork(cfg.Artwork, size)
		if err != nil {
			result.err = fmt.Errorf("%s: %w", name, err)
			return result
		}
	} else {
		img = icon.Draw(size)
	}

	data, err := encoder.EncodeBytes(encoder.FromNRGBA(img))
	if err != nil {
		result.err = fmt.Errorf("encode %s: %w", name, err)
		return result
	}

	hash := hasher.ContentHash(data, hasher.HexLen)
	result.icon.Bytes = int64(len(data))
	result.icon.Hash = hash

	outPath := filepath.Join(cfg.OutputDir, name)
	if !cfg.Force {
		existing, err := hasher.FileHash(outPath, hasher.HexLen)
		if err != nil {
			result.err = fmt.Errorf("hash existing %s: %w", name, err)
			return result
		}
		if existing == hash {
			result.icon.Unchanged = true
			return result
		}
	}

	if err := paths.AtomicWrite(outPath, data); err != nil {
		result.err = fmt.Errorf("write %s: %w", name, err)
		return result
	}
	return result
}
