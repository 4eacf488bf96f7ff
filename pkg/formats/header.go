package formats

import (
	"bytes"
	"fmt"
	"io"
)

func writeHeader(w io.Writer, magic string) error {
	header := append([]byte(magic), CurrentVersion.Major, CurrentVersion.Minor)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// readHeader checks magic and version and returns a reader positioned at
// the first record.
func readHeader(data []byte, magic string, errMagic error) (*bytes.Reader, error) {
	if len(data) < 6 {
		return nil, ErrTruncatedDumpData
	}
	if string(data[0:4]) != magic {
		return nil, errMagic
	}

	version := DumpVersion{Major: data[4], Minor: data[5]}
	if version.Major != CurrentVersion.Major {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDumpVersion, version)
	}
	return bytes.NewReader(data[6:]), nil
}
