package naronbenh

import (
	"image"

	"go.uber.org/zap"

	"github.com/wurstmineberg/naronbenh/pkg/math"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// Default render areas.
var (
	DefaultBuildingArea  = raster.Area{MinX: 4200, MinZ: -4300, MaxX: 4500, MaxZ: -4000}
	DefaultPerimeterArea = raster.Area{MinX: 4000, MinZ: -4500, MaxX: 4700, MaxZ: -3800}
)

// Renderer rasterizes the building and its perimeter.
type Renderer struct {
	// Workers is the number of goroutines evaluating pixels.
	// 0 means one per CPU, 1 renders on the calling goroutine.
	Workers int

	BuildingArea  raster.Area
	PerimeterArea raster.Area

	// Log receives progress lines at phase boundaries. May be nil.
	Log *zap.Logger

	// shape is the structure being rendered; nil means the Naron Benh.
	shape *Structure
}

// NewRenderer returns a renderer for the Naron Benh with the default areas.
func NewRenderer(log *zap.Logger) *Renderer {
	return &Renderer{
		BuildingArea:  DefaultBuildingArea,
		PerimeterArea: DefaultPerimeterArea,
		Log:           log,
		shape:         naronBenh,
	}
}

func (r *Renderer) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

func (r *Renderer) structure() *Structure {
	if r.shape == nil {
		return naronBenh
	}
	return r.shape
}

func (r *Renderer) workers() int {
	return raster.Workers(r.Workers)
}

// Building renders the horizontal slice of the building at height y over
// BuildingArea.
func (r *Renderer) Building(y int16) *image.Gray {
	s := r.structure()
	return raster.Render(r.BuildingArea, r.workers(), func(x, z int) bool {
		return s.Contains(math.Vec3{X: x, Y: int(y), Z: z})
	})
}

// Footprint computes the structure columns needed to evaluate the
// perimeter anywhere in PerimeterArea.
func (r *Renderer) Footprint() *Footprint {
	area := r.PerimeterArea.Grow(perimeterRadius)
	r.log().Info("calculating main building", zap.Stringer("area", area))
	fp := BuildFootprint(r.structure(), area)
	r.log().Debug("main building done", zap.Int("columns", fp.Len()))
	return fp
}

// Perimeter renders the perimeter over PerimeterArea. The footprint is
// built first, then every pixel is evaluated against it in parallel.
func (r *Renderer) Perimeter() *image.Gray {
	fp := r.Footprint()
	r.log().Info("calculating perimeter",
		zap.Stringer("area", r.PerimeterArea),
		zap.Int("workers", r.workers()))
	return raster.Render(r.PerimeterArea, r.workers(), fp.InPerimeter)
}
