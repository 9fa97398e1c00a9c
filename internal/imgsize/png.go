package imgsize

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// pngSignature is the fixed 8-byte PNG file signature.
const pngSignature = "\x89PNG\r\n\x1a\n"

const (
	ihdrTag = "IHDR"
	// ihdrLen is the payload length every conforming IHDR declares.
	ihdrLen = 13
)

// PNG reads the signature and the first chunk header, and returns the
// width and height stored in IHDR. The chunk CRC is not checked.
func PNG(r io.Reader) (Size, error) {
	n, err := readIHDRHeader(r)
	if err != nil {
		return Size{}, err
	}
	if n < 8 {
		return Size{}, ErrNotRecognized
	}
	var dims [8]byte
	if err := readFull(r, dims[:]); err != nil {
		return Size{}, err
	}
	return pngSize(dims[:]), nil
}

// PNGStrict is PNG with integrity checking: IHDR must declare exactly 13
// bytes and its stored CRC32 must match the tag and payload.
func PNGStrict(r io.Reader) (Size, error) {
	n, err := readIHDRHeader(r)
	if err != nil {
		return Size{}, err
	}
	if n != ihdrLen {
		return Size{}, ErrNotRecognized
	}
	var body [ihdrLen + 4]byte
	if err := readFull(r, body[:]); err != nil {
		return Size{}, err
	}

	crc := crc32.NewIEEE()
	crc.Write([]byte(ihdrTag))
	crc.Write(body[:ihdrLen])
	if crc.Sum32() != binary.BigEndian.Uint32(body[ihdrLen:]) {
		return Size{}, ErrNotRecognized
	}
	return pngSize(body[:8]), nil
}

// readIHDRHeader consumes the signature and the first chunk's length and
// tag, returning the declared payload length.
func readIHDRHeader(r io.Reader) (uint32, error) {
	var buf [16]byte
	if err := readFull(r, buf[:8]); err != nil {
		return 0, err
	}
	if string(buf[:8]) != pngSignature {
		return 0, ErrNotRecognized
	}
	if err := readFull(r, buf[8:]); err != nil {
		return 0, err
	}
	if string(buf[12:16]) != ihdrTag {
		return 0, ErrNotRecognized
	}
	return binary.BigEndian.Uint32(buf[8:12]), nil
}

func pngSize(b []byte) Size {
	return Size{
		Width:  int(binary.BigEndian.Uint32(b[0:4])),
		Height: int(binary.BigEndian.Uint32(b[4:8])),
	}
}
