package export

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/wurstmineberg/naronbenh/pkg/formats"
)

// WriteLayers streams layers into a building dump at path and returns the
// number of records written.
func WriteLayers(path string, layers iter.Seq[formats.Layer]) (int, error) {
	return writeDump(path, func(w *bufio.Writer) (int, error) {
		lw, err := formats.NewLayerWriter(w)
		if err != nil {
			return 0, err
		}
		n := 0
		for l := range layers {
			if err := lw.Write(l); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	})
}

// WriteRows streams rows into a perimeter dump at path and returns the
// number of records written.
func WriteRows(path string, rows iter.Seq[formats.Row]) (int, error) {
	return writeDump(path, func(w *bufio.Writer) (int, error) {
		rw, err := formats.NewRowWriter(w)
		if err != nil {
			return 0, err
		}
		n := 0
		for r := range rows {
			if err := rw.Write(r); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	})
}

func writeDump(path string, write func(*bufio.Writer) (int, error)) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	n, err := write(w)
	if err != nil {
		return n, err
	}
	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return n, fmt.Errorf("closing %s: %w", path, err)
	}
	return n, nil
}
