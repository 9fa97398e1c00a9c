package encoder

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// pngSignature opens every PNG datastream.
const pngSignature = "\x89PNG\r\n\x1a\n"

const (
	chunkIHDR = "IHDR"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
)

// ihdrLen is the fixed payload size of an IHDR chunk.
const ihdrLen = 13

const (
	bitDepth8        = 8
	colorTypeRGBA    = 6
	compressionZlib  = 0
	filterAdaptive   = 0
	interlaceNone    = 0
	filterTypeNone   = 0
	chunkFramingSize = 12 // length + tag + crc
)

// writeChunk appends one chunk to buf: big-endian payload length, tag,
// payload, and the CRC32 (IEEE) of tag followed by payload.
func writeChunk(buf *bytes.Buffer, tag string, data []byte) {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], tag)
	buf.Write(hdr[:])
	buf.Write(data)

	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	buf.Write(sum[:])
}

// ihdr builds the 13-byte header payload for an 8-bit RGBA image.
func ihdr(width, height int) []byte {
	b := make([]byte, ihdrLen)
	binary.BigEndian.PutUint32(b[0:4], uint32(width))
	binary.BigEndian.PutUint32(b[4:8], uint32(height))
	b[8] = bitDepth8
	b[9] = colorTypeRGBA
	b[10] = compressionZlib
	b[11] = filterAdaptive
	b[12] = interlaceNone
	return b
}
