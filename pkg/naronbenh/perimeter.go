package naronbenh

import "github.com/wurstmineberg/naronbenh/pkg/math"

const perimeterRadius = 128

// columnSource decides which columns hold part of the structure.
type columnSource interface {
	ContainsColumn(x, z int) bool
	// Bounds must contain every column for which ContainsColumn is true.
	Bounds() math.Box
}

// inPerimeter scans the window [x-128, x+128) × [z-128, z+128) for a
// structure column at most 128 blocks away. The window is half-open, so a
// column exactly 128 blocks towards -x or -z is never seen.
func inPerimeter(src columnSource, x, z int) bool {
	b := src.Bounds()
	if b.Empty() {
		return false
	}
	q := math.Vec2{X: x, Z: z}
	if b.DistSqXZ(q) > perimeterRadius*perimeterRadius {
		return false
	}

	// columns outside b never match, so the window is clipped to it
	minX, maxX := max(x-perimeterRadius, b.Min.X), min(x+perimeterRadius, b.Max.X+1)
	minZ, maxZ := max(z-perimeterRadius, b.Min.Z), min(z+perimeterRadius, b.Max.Z+1)
	for dx := minX; dx < maxX; dx++ {
		for dz := minZ; dz < maxZ; dz++ {
			if q.Dist(math.Vec2{X: dx, Z: dz}) <= perimeterRadius && src.ContainsColumn(dx, dz) {
				return true
			}
		}
	}
	return false
}

// InPerimeter reports whether (x, z) is within the perimeter of s, deriving
// each candidate column directly from the structure.
func (s *Structure) InPerimeter(x, z int) bool {
	return inPerimeter(s, x, z)
}

// InPerimeterOf reports whether (x, z) is within the perimeter, looking
// candidate columns up in fp. fp must have been built over an area that
// covers the window around (x, z), or over the whole structure.
func InPerimeterOf(fp *Footprint, x, z int) bool {
	return inPerimeter(fp, x, z)
}

// InPerimeter reports whether (x, z) is within the Naron Benh perimeter.
func InPerimeter(x, z int16) bool {
	return naronBenh.InPerimeter(int(x), int(z))
}
