// Package imgsize recovers image dimensions from PNG and baseline JPEG
// headers without decoding pixel data. Only the first few dozen bytes of a
// file are read, so the readers work against any stream that exposes a
// sufficient prefix.
package imgsize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotRecognized is returned when a byte stream does not match any known
// header shape: wrong signature, unexpected chunk or marker sequence,
// truncated data or an unsupported file extension. It means "dimensions
// unknown", not a failure of the environment.
var ErrNotRecognized = errors.New("image format not recognized")

// Size is the width and height of an image in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// IOError reports that a file could not be opened or inspected. It never
// matches ErrNotRecognized.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// headerReader decodes dimensions from the start of a stream.
type headerReader func(io.Reader) (Size, error)

// Dimensions returns the size of the PNG or JPEG file at path, chosen by
// its extension (case-insensitive). Any other extension yields
// ErrNotRecognized without touching the file.
func Dimensions(path string) (Size, error) {
	return dimensions(path, PNG)
}

// DimensionsStrict is Dimensions with IHDR CRC verification for PNG files.
func DimensionsStrict(path string) (Size, error) {
	return dimensions(path, PNGStrict)
}

func dimensions(path string, pngReader headerReader) (Size, error) {
	var read headerReader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		read = pngReader
	case ".jpg", ".jpeg":
		read = JPEG
	default:
		return Size{}, ErrNotRecognized
	}

	f, err := os.Open(path)
	if err != nil {
		return Size{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return read(bufio.NewReaderSize(f, 512))
}

// readFull reads exactly len(buf) bytes. Short reads and read failures
// during header parsing both map to ErrNotRecognized.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return ErrNotRecognized
	}
	return nil
}
