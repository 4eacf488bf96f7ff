package naronbenh

import (
	"iter"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wurstmineberg/naronbenh/pkg/formats"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// once wraps seq so that only its first iteration produces values.
func once[T any](seq iter.Seq[T]) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			return
		}
		seq(yield)
	}
}

// BuildingLayers returns the building slices for every y in [MinY, MaxY),
// bottom to top. Each layer is rendered when it is requested. The sequence
// can be iterated once.
func (r *Renderer) BuildingLayers() iter.Seq[formats.Layer] {
	return once(func(yield func(formats.Layer) bool) {
		area := r.BuildingArea
		r.log().Info("calculating main building layers", zap.Stringer("area", area))
		for y := MinY; y < MaxY; y++ {
			img := r.Building(int16(y))
			r.log().Debug("layer done", zap.Int("y", y), zap.Int("inside", raster.Count(img)))
			layer := formats.Layer{
				Y:      int16(y),
				MinX:   int16(area.MinX),
				MinZ:   int16(area.MinZ),
				Width:  uint16(area.Width()),
				Height: uint16(area.Height()),
				Cells:  img.Pix,
			}
			if !yield(layer) {
				return
			}
		}
	})
}

// PerimeterRows returns the perimeter raster one z row at a time, north to
// south. The footprint is built when iteration starts and each row is
// evaluated when it is requested. The sequence can be iterated once.
func (r *Renderer) PerimeterRows() iter.Seq[formats.Row] {
	return once(func(yield func(formats.Row) bool) {
		fp := r.Footprint()
		area := r.PerimeterArea
		r.log().Info("calculating perimeter", zap.Stringer("area", area))
		for z := area.MinZ; z < area.MaxZ; z++ {
			row := formats.Row{
				Z:     int16(z),
				MinX:  int16(area.MinX),
				Cells: raster.RenderRow(area, z, r.workers(), fp.InPerimeter),
			}
			if !yield(row) {
				return
			}
		}
	})
}
