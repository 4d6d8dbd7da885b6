// Package bitmap is the BMP container collaborator referenced by the
// core's §1 "out of scope" boundary: it decodes the 1-bit and 8-bit
// indexed BMP containers the core treats as opaque, and re-serializes
// the watermarked output, preserving the cover's header bytes
// verbatim (§6.1-6.3). None of the numerical logic in the root package
// depends on this package; it only depends on the plain tensors and
// matrices bitmap produces.
package bitmap

import "encoding/binary"

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
)

// fileHeader mirrors the 14-byte BITMAPFILEHEADER.
type fileHeader struct {
	bfType      uint16
	bfSize      uint32
	bfReserved1 uint16
	bfReserved2 uint16
	bfOffBits   uint32
}

// infoHeader mirrors the 40-byte BITMAPINFOHEADER.
type infoHeader struct {
	biSize          uint32
	biWidth         int32
	biHeight        int32
	biPlanes        uint16
	biBitCount      uint16
	biCompression   uint32
	biSizeImage     uint32
	biXPelsPerMeter int32
	biYPelsPerMeter int32
	biClrUsed       uint32
	biClrImportant  uint32
}

func parseFileHeader(b []byte) fileHeader {
	return fileHeader{
		bfType:      binary.LittleEndian.Uint16(b[0:2]),
		bfSize:      binary.LittleEndian.Uint32(b[2:6]),
		bfReserved1: binary.LittleEndian.Uint16(b[6:8]),
		bfReserved2: binary.LittleEndian.Uint16(b[8:10]),
		bfOffBits:   binary.LittleEndian.Uint32(b[10:14]),
	}
}

func parseInfoHeader(b []byte) infoHeader {
	return infoHeader{
		biSize:          binary.LittleEndian.Uint32(b[0:4]),
		biWidth:         int32(binary.LittleEndian.Uint32(b[4:8])),
		biHeight:        int32(binary.LittleEndian.Uint32(b[8:12])),
		biPlanes:        binary.LittleEndian.Uint16(b[12:14]),
		biBitCount:      binary.LittleEndian.Uint16(b[14:16]),
		biCompression:   binary.LittleEndian.Uint32(b[16:20]),
		biSizeImage:     binary.LittleEndian.Uint32(b[20:24]),
		biXPelsPerMeter: int32(binary.LittleEndian.Uint32(b[24:28])),
		biYPelsPerMeter: int32(binary.LittleEndian.Uint32(b[28:32])),
		biClrUsed:       binary.LittleEndian.Uint32(b[32:36]),
		biClrImportant:  binary.LittleEndian.Uint32(b[36:40]),
	}
}

// rowBytes returns the padded scanline size in bytes for the given
// width and bit depth: rows are padded to a multiple of 4 bytes (§6.1,
// §6.2).
func rowBytes(width int, bitCount uint16) int {
	bitsPerRow := width * int(bitCount)
	return ((bitsPerRow + 31) / 32) * 4
}
