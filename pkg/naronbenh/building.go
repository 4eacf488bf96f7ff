// Package naronbenh answers containment queries for the Naron Benh
// structure and its perimeter, and renders both as rasters.
//
// The structure is the intersection of balls of radius 128 around every
// anchor, minus balls of radius 24 around the upper anchors. The perimeter
// is every column within 128 blocks of a column that holds part of the
// structure at some height in [MinY, MaxY).
package naronbenh

import "github.com/wurstmineberg/naronbenh/pkg/math"

// Height range scanned for structure columns, MaxY exclusive.
const (
	MinY = -36
	MaxY = 140
)

const (
	reachRadius  = 128.0
	hollowRadius = 24.0
)

// Structure is a solid defined by anchor points. It is immutable.
type Structure struct {
	upper   []math.Vec3
	anchors []math.Vec3 // upper followed by lower
	bounds  math.Box
}

func newStructure(upper, lower []math.Vec3) *Structure {
	anchors := make([]math.Vec3, 0, len(upper)+len(lower))
	anchors = append(anchors, upper...)
	anchors = append(anchors, lower...)
	return &Structure{
		upper:   append([]math.Vec3(nil), upper...),
		anchors: anchors,
		bounds:  reachBounds(anchors),
	}
}

// reachBounds returns the box of points within reachRadius of every anchor
// along each axis, with the height clipped to [MinY, MaxY).
func reachBounds(anchors []math.Vec3) math.Box {
	b := math.EmptyBox()
	for _, a := range anchors {
		b = b.Extend(a)
	}
	// b now spans the anchors; the reachable box is the anchor span turned
	// inside out by the radius.
	r := int(reachRadius)
	out := math.Box{
		Min: math.Vec3{X: b.Max.X - r, Y: b.Max.Y - r, Z: b.Max.Z - r},
		Max: math.Vec3{X: b.Min.X + r, Y: b.Min.Y + r, Z: b.Min.Z + r},
	}
	out.Min.Y = max(out.Min.Y, MinY)
	out.Max.Y = min(out.Max.Y, MaxY-1)
	return out
}

// Contains reports whether p is inside the structure: no anchor is farther
// than 128 blocks and no upper anchor is closer than 24 blocks. Both
// boundaries belong to the structure.
func (s *Structure) Contains(p math.Vec3) bool {
	for _, a := range s.anchors {
		if p.Dist(a) > reachRadius {
			return false
		}
	}
	for _, a := range s.upper {
		if p.Dist(a) < hollowRadius {
			return false
		}
	}
	return true
}

// Bounds returns a box outside of which Contains is always false for
// heights in [MinY, MaxY). It may be empty.
func (s *Structure) Bounds() math.Box {
	return s.bounds
}

// ContainsColumn reports whether the structure occupies (x, z) at any
// height in [MinY, MaxY).
func (s *Structure) ContainsColumn(x, z int) bool {
	c := math.Vec2{X: x, Z: z}
	if !s.bounds.ContainsXZ(c) {
		return false
	}
	for y := s.bounds.Min.Y; y <= s.bounds.Max.Y; y++ {
		if s.Contains(c.At(y)) {
			return true
		}
	}
	return false
}

// InBuilding reports whether (x, y, z) is inside the Naron Benh building.
func InBuilding(x, y, z int16) bool {
	return naronBenh.Contains(math.V3(x, y, z))
}
