// Package raster evaluates boolean predicates over rectangles of block
// coordinates and collects the results into grayscale grids.
package raster

import (
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Intensities written for predicate results.
const (
	Inside  uint8 = 255
	Outside uint8 = 0
)

// Area is a half-open rectangle [MinX, MaxX) × [MinZ, MaxZ) of block columns.
type Area struct {
	MinX int `yaml:"min_x"`
	MinZ int `yaml:"min_z"`
	MaxX int `yaml:"max_x"`
	MaxZ int `yaml:"max_z"`
}

// Width returns the number of columns along x.
func (a Area) Width() int {
	return max(a.MaxX-a.MinX, 0)
}

// Height returns the number of columns along z.
func (a Area) Height() int {
	return max(a.MaxZ-a.MinZ, 0)
}

// Empty reports whether the area holds no columns.
func (a Area) Empty() bool {
	return a.Width() == 0 || a.Height() == 0
}

// Contains reports whether (x, z) lies inside the area.
func (a Area) Contains(x, z int) bool {
	return x >= a.MinX && x < a.MaxX && z >= a.MinZ && z < a.MaxZ
}

// Grow returns the area extended by n blocks on every side.
func (a Area) Grow(n int) Area {
	return Area{MinX: a.MinX - n, MinZ: a.MinZ - n, MaxX: a.MaxX + n, MaxZ: a.MaxZ + n}
}

// Intersect returns the columns shared by a and b.
func (a Area) Intersect(b Area) Area {
	r := Area{
		MinX: max(a.MinX, b.MinX),
		MinZ: max(a.MinZ, b.MinZ),
		MaxX: min(a.MaxX, b.MaxX),
		MaxZ: min(a.MaxZ, b.MaxZ),
	}
	if r.Empty() {
		return Area{}
	}
	return r
}

// String returns the area as "x [min,max) z [min,max)".
func (a Area) String() string {
	return fmt.Sprintf("x [%d,%d) z [%d,%d)", a.MinX, a.MaxX, a.MinZ, a.MaxZ)
}

// Workers resolves a configured worker count: 0 or less means one per CPU.
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Render evaluates pred for every column of area and returns a grid whose
// pixel (i, j) holds the result for (area.MinX+i, area.MinZ+j).
//
// Rows are handed to at most workers goroutines. Every pixel is written by
// exactly one of them, so the grid does not depend on the worker count or on
// scheduling. With workers <= 1 the rows are evaluated in order on the
// calling goroutine.
func Render(area Area, workers int, pred func(x, z int) bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, area.Width(), area.Height()))
	if area.Empty() {
		return img
	}

	if workers <= 1 {
		for j := 0; j < area.Height(); j++ {
			renderRow(img, area, j, pred)
		}
		return img
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for j := 0; j < area.Height(); j++ {
		g.Go(func() error {
			renderRow(img, area, j, pred)
			return nil
		})
	}
	_ = g.Wait() // rows never fail
	return img
}

// RenderRow evaluates pred along one row of area, z fixed, into a fresh
// slice of Width() intensities. The columns are split across workers.
func RenderRow(area Area, z, workers int, pred func(x, z int) bool) []uint8 {
	row := make([]uint8, area.Width())
	if len(row) == 0 {
		return row
	}
	if workers <= 1 {
		fillRow(row, area.MinX, z, pred)
		return row
	}

	chunk := (len(row) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(row); start += chunk {
		end := min(start+chunk, len(row))
		g.Go(func() error {
			fillRow(row[start:end], area.MinX+start, z, pred)
			return nil
		})
	}
	_ = g.Wait()
	return row
}

func renderRow(img *image.Gray, area Area, j int, pred func(x, z int) bool) {
	off := j * img.Stride
	fillRow(img.Pix[off:off+area.Width()], area.MinX, area.MinZ+j, pred)
}

func fillRow(dst []uint8, minX, z int, pred func(x, z int) bool) {
	for i := range dst {
		if pred(minX+i, z) {
			dst[i] = Inside
		} else {
			dst[i] = Outside
		}
	}
}

// Count returns the number of Inside pixels in img.
func Count(img *image.Gray) int {
	n := 0
	b := img.Bounds()
	for j := 0; j < b.Dy(); j++ {
		off := j * img.Stride
		for _, p := range img.Pix[off : off+b.Dx()] {
			if p == Inside {
				n++
			}
		}
	}
	return n
}
