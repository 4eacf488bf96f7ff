// Package export writes rendered rasters and dumps to disk.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder encodes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	"png": png.Encode,
	"bmp": bmp.Encode,
	"tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// ImageWriter saves images of one format below a directory.
type ImageWriter struct {
	outputDir string
	format    string
	encode    Encoder
}

// NewImageWriter creates a writer for format ("png", "bmp" or "tiff").
func NewImageWriter(outputDir, format string) (*ImageWriter, error) {
	encode, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	return &ImageWriter{
		outputDir: outputDir,
		format:    format,
		encode:    encode,
	}, nil
}

// Path returns the file path for name, with the format's extension.
func (iw *ImageWriter) Path(name string) string {
	return filepath.Join(iw.outputDir, name+"."+iw.format)
}

// Save writes img to Path(name), creating directories as needed, and
// returns the path. A file left behind after an error is incomplete.
func (iw *ImageWriter) Save(name string, img image.Image) (string, error) {
	path := iw.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := iw.encode(w, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", iw.format, err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	return path, nil
}
