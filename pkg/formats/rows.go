package formats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Row is one z row of the perimeter raster.
type Row struct {
	Z     int16
	MinX  int16
	Cells []uint8
}

// Inside reports whether column x of the row is inside the perimeter.
func (r *Row) Inside(x int) bool {
	i := x - int(r.MinX)
	if i < 0 || i >= len(r.Cells) {
		return false
	}
	return r.Cells[i] != 0
}

// RowWriter streams rows into a perimeter dump.
type RowWriter struct {
	w io.Writer
}

// NewRowWriter writes the file header to w and returns a writer for the
// row records.
func NewRowWriter(w io.Writer) (*RowWriter, error) {
	if err := writeHeader(w, rowsMagic); err != nil {
		return nil, err
	}
	return &RowWriter{w: w}, nil
}

// Write appends one row record.
func (rw *RowWriter) Write(row Row) error {
	if len(row.Cells) > 0xFFFF {
		return fmt.Errorf("%w: row z=%d has %d cells", ErrInvalidRecord, row.Z, len(row.Cells))
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, row.Z)
	binary.Write(buf, binary.LittleEndian, row.MinX)
	binary.Write(buf, binary.LittleEndian, uint16(len(row.Cells)))
	buf.Write(packBits(row.Cells))

	if _, err := rw.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing row z=%d: %w", row.Z, err)
	}
	return nil
}

// ParseRows parses a perimeter dump from raw bytes.
func ParseRows(data []byte) ([]Row, error) {
	r, err := readHeader(data, rowsMagic, ErrInvalidRowsMagic)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for r.Len() > 0 {
		var row Row
		var width uint16
		if err := binary.Read(r, binary.LittleEndian, &row.Z); err != nil {
			return nil, fmt.Errorf("%w: reading z of row %d", ErrTruncatedDumpData, len(rows))
		}
		if err := binary.Read(r, binary.LittleEndian, &row.MinX); err != nil {
			return nil, fmt.Errorf("%w: reading min x of row %d", ErrTruncatedDumpData, len(rows))
		}
		if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
			return nil, fmt.Errorf("%w: reading width of row %d", ErrTruncatedDumpData, len(rows))
		}
		packed := make([]byte, packedLen(int(width)))
		if _, err := io.ReadFull(r, packed); err != nil {
			return nil, fmt.Errorf("%w: reading cells of row %d", ErrTruncatedDumpData, len(rows))
		}
		row.Cells = unpackBits(packed, int(width))
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseRowsFile parses a perimeter dump from disk.
func ParseRowsFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file: %w", err)
	}
	return ParseRows(data)
}
