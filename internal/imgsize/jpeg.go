package imgsize

import (
	"bufio"
	"encoding/binary"
	"io"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerEOI    = 0xD9
)

// isSOF reports whether marker starts a frame header. C4 (DHT), C8
// (reserved) and CC (DAC) share the range but are not frames.
func isSOF(marker byte) bool {
	if marker < 0xC0 || marker > 0xCF {
		return false
	}
	switch marker {
	case 0xC4, 0xC8, 0xCC:
		return false
	}
	return true
}

// JPEG scans marker segments from the start of the stream until the first
// Start-Of-Frame segment and returns the frame's width and height.
func JPEG(r io.Reader) (Size, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var soi [2]byte
	if err := readFull(br, soi[:]); err != nil {
		return Size{}, err
	}
	if soi[0] != markerPrefix || soi[1] != markerSOI {
		return Size{}, ErrNotRecognized
	}

	for {
		b, err := br.ReadByte()
		if err != nil {
			return Size{}, ErrNotRecognized
		}
		// Stray bytes between segments are skipped until a marker prefix.
		if b != markerPrefix {
			continue
		}

		marker, err := br.ReadByte()
		for err == nil && marker == markerPrefix {
			marker, err = br.ReadByte()
		}
		if err != nil {
			return Size{}, ErrNotRecognized
		}

		// SOI and EOI carry no length field.
		if marker == markerSOI || marker == markerEOI {
			continue
		}

		var lenBuf [2]byte
		if err := readFull(br, lenBuf[:]); err != nil {
			return Size{}, err
		}
		segLen := int(binary.BigEndian.Uint16(lenBuf[:]))
		if segLen < 2 {
			return Size{}, ErrNotRecognized
		}

		if isSOF(marker) {
			// precision(1) height(2) width(2)
			var frame [5]byte
			if err := readFull(br, frame[:]); err != nil {
				return Size{}, err
			}
			return Size{
				Width:  int(binary.BigEndian.Uint16(frame[3:5])),
				Height: int(binary.BigEndian.Uint16(frame[1:3])),
			}, nil
		}

		if _, err := br.Discard(segLen - 2); err != nil {
			return Size{}, ErrNotRecognized
		}
	}
}
