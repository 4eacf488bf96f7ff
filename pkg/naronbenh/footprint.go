package naronbenh

import (
	"github.com/wurstmineberg/naronbenh/pkg/math"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// Footprint is the set of structure columns inside an area, computed once.
// It is read-only after BuildFootprint returns and safe for concurrent use.
type Footprint struct {
	area    raster.Area
	columns map[math.Vec2]struct{}
	bounds  math.Box
}

// BuildFootprint collects every column of area that holds part of s at some
// height in [MinY, MaxY). Only the part of area inside s's bounds is
// scanned; nothing outside can match.
func BuildFootprint(s *Structure, area raster.Area) *Footprint {
	fp := &Footprint{
		area:    area,
		columns: make(map[math.Vec2]struct{}),
		bounds:  math.EmptyBox(),
	}

	b := s.Bounds()
	scan := area.Intersect(raster.Area{
		MinX: b.Min.X,
		MinZ: b.Min.Z,
		MaxX: b.Max.X + 1,
		MaxZ: b.Max.Z + 1,
	})
	for z := scan.MinZ; z < scan.MaxZ; z++ {
		for x := scan.MinX; x < scan.MaxX; x++ {
			if s.ContainsColumn(x, z) {
				fp.insert(math.Vec2{X: x, Z: z})
			}
		}
	}
	return fp
}

func (fp *Footprint) insert(c math.Vec2) {
	fp.columns[c] = struct{}{}
	fp.bounds = fp.bounds.Extend(c.At(0))
}

// ContainsColumn reports whether (x, z) is a structure column of the index.
func (fp *Footprint) ContainsColumn(x, z int) bool {
	_, ok := fp.columns[math.Vec2{X: x, Z: z}]
	return ok
}

// Len returns the number of columns.
func (fp *Footprint) Len() int {
	return len(fp.columns)
}

// Bounds returns the box spanned by the columns, at height 0.
func (fp *Footprint) Bounds() math.Box {
	return fp.bounds
}

// Area returns the area the footprint was built over.
func (fp *Footprint) Area() raster.Area {
	return fp.area
}

// InPerimeter is InPerimeterOf(fp, x, z).
func (fp *Footprint) InPerimeter(x, z int) bool {
	return inPerimeter(fp, x, z)
}
