// Package math provides integer block coordinates and distance helpers.
package math

import "math"

// Vec3 is a 3D block coordinate.
type Vec3 struct {
	X, Y, Z int
}

// V3 widens 16-bit coordinates to a Vec3.
func V3(x, y, z int16) Vec3 {
	return Vec3{int(x), int(y), int(z)}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// LengthSq returns the exact squared magnitude.
func (v Vec3) LengthSq() int {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistSq returns the exact squared distance to another point.
func (v Vec3) DistSq(other Vec3) int {
	return v.Sub(other).LengthSq()
}

// Dist returns the Euclidean distance to another point.
func (v Vec3) Dist(other Vec3) float64 {
	return math.Sqrt(float64(v.DistSq(other)))
}

// XZ returns the horizontal components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}
