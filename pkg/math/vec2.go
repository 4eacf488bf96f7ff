package math

import "math"

// Vec2 is a horizontal (x, z) block coordinate.
type Vec2 struct {
	X, Z int
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Z - other.Z}
}

// LengthSq returns the exact squared magnitude.
func (v Vec2) LengthSq() int {
	return v.X*v.X + v.Z*v.Z
}

// DistSq returns the exact squared distance to another point.
func (v Vec2) DistSq(other Vec2) int {
	return v.Sub(other).LengthSq()
}

// Dist returns the Euclidean distance to another point.
func (v Vec2) Dist(other Vec2) float64 {
	return math.Sqrt(float64(v.DistSq(other)))
}

// At returns the 3D coordinate at height y.
func (v Vec2) At(y int) Vec3 {
	return Vec3{v.X, y, v.Z}
}
