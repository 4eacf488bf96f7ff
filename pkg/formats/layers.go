package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Layer is one horizontal slice of the building at height Y.
type Layer struct {
	Y      int16
	MinX   int16
	MinZ   int16
	Width  uint16
	Height uint16
	// Cells holds Width*Height intensities, row-major (z rows, x columns).
	Cells []uint8
}

// Count returns the number of inside cells.
func (l *Layer) Count() int {
	n := 0
	for _, c := range l.Cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Inside reports whether the cell at world column (x, z) is inside.
// Columns outside the layer are never inside.
func (l *Layer) Inside(x, z int) bool {
	i := x - int(l.MinX)
	j := z - int(l.MinZ)
	if i < 0 || j < 0 || i >= int(l.Width) || j >= int(l.Height) {
		return false
	}
	return l.Cells[j*int(l.Width)+i] != 0
}

// LayerWriter streams layers into a building dump.
type LayerWriter struct {
	w io.Writer
}

// NewLayerWriter writes the file header to w and returns a writer for the
// layer records.
func NewLayerWriter(w io.Writer) (*LayerWriter, error) {
	if err := writeHeader(w, layersMagic); err != nil {
		return nil, err
	}
	return &LayerWriter{w: w}, nil
}

// Write appends one layer record.
func (lw *LayerWriter) Write(l Layer) error {
	if len(l.Cells) != int(l.Width)*int(l.Height) {
		return fmt.Errorf("%w: layer y=%d has %d cells, want %dx%d",
			ErrInvalidRecord, l.Y, len(l.Cells), l.Width, l.Height)
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, l.Y)
	binary.Write(buf, binary.LittleEndian, l.MinX)
	binary.Write(buf, binary.LittleEndian, l.MinZ)
	binary.Write(buf, binary.LittleEndian, l.Width)
	binary.Write(buf, binary.LittleEndian, l.Height)
	buf.Write(packBits(l.Cells))

	if _, err := lw.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing layer y=%d: %w", l.Y, err)
	}
	return nil
}

// ParseLayers parses a building dump from raw bytes.
func ParseLayers(data []byte) ([]Layer, error) {
	r, err := readHeader(data, layersMagic, ErrInvalidLayersMagic)
	if err != nil {
		return nil, err
	}

	var layers []Layer
	for r.Len() > 0 {
		l, err := parseLayer(r)
		if err != nil {
			return nil, fmt.Errorf("parsing layer %d: %w", len(layers), err)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func parseLayer(r *bytes.Reader) (Layer, error) {
	var l Layer
	fields := []struct {
		name string
		ptr  any
	}{
		{"y", &l.Y},
		{"min x", &l.MinX},
		{"min z", &l.MinZ},
		{"width", &l.Width},
		{"height", &l.Height},
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f.ptr); err != nil {
			return Layer{}, fmt.Errorf("%w: reading %s", ErrTruncatedDumpData, f.name)
		}
	}

	n := int(l.Width) * int(l.Height)
	packed := make([]byte, packedLen(n))
	if _, err := io.ReadFull(r, packed); err != nil {
		return Layer{}, fmt.Errorf("%w: reading cells", ErrTruncatedDumpData)
	}
	l.Cells = unpackBits(packed, n)
	return l, nil
}

// ParseLayersFile parses a building dump from disk.
func ParseLayersFile(path string) ([]Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layers file: %w", err)
	}
	return ParseLayers(data)
}
