package math

// Box is an inclusive integer bounding box.
// The zero value is not empty; use EmptyBox for an accumulator.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box that contains nothing and grows with Extend.
func EmptyBox() Box {
	const big = int(^uint(0) >> 1)
	return Box{
		Min: Vec3{big, big, big},
		Max: Vec3{-big, -big, -big},
	}
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing b and p.
func (b Box) Extend(p Vec3) Box {
	b.Min = Vec3{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)}
	b.Max = Vec3{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)}
	return b
}

// Contains reports whether p lies inside b.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsXZ reports whether the column (x, z) passes through b.
func (b Box) ContainsXZ(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// DistSqXZ returns the exact squared horizontal distance from p to the
// nearest column of b, or 0 if p is inside b's horizontal extent.
func (b Box) DistSqXZ(p Vec2) int {
	dx := 0
	if p.X < b.Min.X {
		dx = b.Min.X - p.X
	} else if p.X > b.Max.X {
		dx = p.X - b.Max.X
	}
	dz := 0
	if p.Z < b.Min.Z {
		dz = b.Min.Z - p.Z
	} else if p.Z > b.Max.Z {
		dz = p.Z - b.Max.Z
	}
	return dx*dx + dz*dz
}
