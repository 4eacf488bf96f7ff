// Package formats reads and writes the compact binary dumps of the Naron
// Benh rasters.
//
// Both file types start with a four byte magic and a two byte version
// (major, minor), followed by records until end of file. All integers are
// little endian. Cells are packed eight to a byte, most significant bit
// first, row-major; a set bit means the cell is inside.
//
//	building (NBLD) record: y int16, minX int16, minZ int16, width uint16, height uint16, bits
//	perimeter (NBPR) record: z int16, minX int16, width uint16, bits
package formats

import (
	"errors"
	"fmt"
)

// Dump format errors.
var (
	ErrInvalidLayersMagic     = errors.New("invalid layers magic: expected 'NBLD'")
	ErrInvalidRowsMagic       = errors.New("invalid rows magic: expected 'NBPR'")
	ErrUnsupportedDumpVersion = errors.New("unsupported dump version")
	ErrTruncatedDumpData      = errors.New("truncated dump data")
	ErrInvalidRecord          = errors.New("invalid record")
)

const (
	layersMagic = "NBLD"
	rowsMagic   = "NBPR"
)

// DumpVersion is the version of a dump file.
type DumpVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v DumpVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// CurrentVersion is written by all writers in this package.
var CurrentVersion = DumpVersion{Major: 1, Minor: 0}

// packBits packs cells into ceil(len/8) bytes, MSB first.
func packBits(cells []uint8) []byte {
	out := make([]byte, (len(cells)+7)/8)
	for i, c := range cells {
		if c != 0 {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

// unpackBits expands n cells from packed, using 255 for set bits.
func unpackBits(packed []byte, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		if packed[i/8]&(0x80>>(i%8)) != 0 {
			out[i] = 255
		}
	}
	return out
}

func packedLen(n int) int {
	return (n + 7) / 8
}
