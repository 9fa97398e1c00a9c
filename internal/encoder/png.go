package encoder

import (
	"bytes"
	"fmt"
	"io"

	"github.com/AnyUserName/assetkit/internal/paths"
	"github.com/klauspost/compress/zlib"
)

// DefaultLevel is the zlib level used when PNGEncoder.Level is zero.
// Level 9 takes seconds per encode on long zero runs such as fully
// transparent images.
const DefaultLevel = 8

// PNGEncoder writes 8-bit truecolor-with-alpha PNG files with a single
// IDAT chunk and no per-row filtering.
type PNGEncoder struct {
	// Level is the zlib compression level. Zero selects DefaultLevel.
	Level int
	// Store writes IDAT as uncompressed deflate blocks and ignores Level.
	Store bool
}

// Encode serializes img as a complete PNG datastream and writes it to w
// in a single Write call. Nothing is written if encoding fails.
func (e *PNGEncoder) Encode(w io.Writer, img *RawImage) error {
	data, err := e.encode(img)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (e *PNGEncoder) encode(img *RawImage) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	idat, err := e.compress(img)
	if err != nil {
		return nil, fmt.Errorf("compress image data: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(pngSignature) + 3*chunkFramingSize + ihdrLen + len(idat))
	buf.WriteString(pngSignature)
	writeChunk(&buf, chunkIHDR, ihdr(img.Width, img.Height))
	writeChunk(&buf, chunkIDAT, idat)
	writeChunk(&buf, chunkIEND, nil)
	return buf.Bytes(), nil
}

// compress frames each row with a None filter byte and deflates the
// result into a zlib stream.
func (e *PNGEncoder) compress(img *RawImage) ([]byte, error) {
	level := e.Level
	switch {
	case e.Store:
		level = zlib.NoCompression
	case level == 0:
		level = DefaultLevel
	}

	var out bytes.Buffer
	zw, err := zlib.NewWriterLevel(&out, level)
	if err != nil {
		return nil, err
	}

	stride := img.Stride()
	filter := []byte{filterTypeNone}
	for y := 0; y < img.Height; y++ {
		if _, err := zw.Write(filter); err != nil {
			return nil, err
		}
		if _, err := zw.Write(img.Pix[y*stride : (y+1)*stride]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

var defaultEncoder = &PNGEncoder{}

// Encode writes img to w as a PNG at DefaultLevel.
func Encode(w io.Writer, img *RawImage) error {
	return defaultEncoder.Encode(w, img)
}

// EncodeBytes returns img as PNG bytes at DefaultLevel.
func EncodeBytes(img *RawImage) ([]byte, error) {
	return defaultEncoder.encode(img)
}

// WriteFile encodes img and replaces the file at path atomically.
func WriteFile(path string, img *RawImage) error {
	data, err := EncodeBytes(img)
	if err != nil {
		return err
	}
	return paths.AtomicWrite(path, data)
}
