package naronbenh

import "github.com/wurstmineberg/naronbenh/pkg/math"

// upperAnchors are the anchors that also carve a hollow of radius
// hollowRadius around themselves.
var upperAnchors = [16]math.Vec3{
	{X: 4352, Y: 68, Z: -4096},
	{X: 4360, Y: 68, Z: -4096},
	{X: 4352, Y: 68, Z: -4090},
	{X: 4360, Y: 68, Z: -4090},
	{X: 4368, Y: 68, Z: -4240},
	{X: 4374, Y: 68, Z: -4240},
	{X: 4368, Y: 68, Z: -4232},
	{X: 4374, Y: 68, Z: -4232},
	{X: 4352, Y: 64, Z: -4096},
	{X: 4360, Y: 64, Z: -4096},
	{X: 4352, Y: 64, Z: -4090},
	{X: 4360, Y: 64, Z: -4090},
	{X: 4368, Y: 64, Z: -4240},
	{X: 4374, Y: 64, Z: -4240},
	{X: 4368, Y: 64, Z: -4232},
	{X: 4374, Y: 64, Z: -4232},
}

var lowerAnchors = [8]math.Vec3{
	{X: 4352, Y: 35, Z: -4096},
	{X: 4360, Y: 35, Z: -4096},
	{X: 4352, Y: 35, Z: -4090},
	{X: 4360, Y: 35, Z: -4090},
	{X: 4368, Y: 35, Z: -4240},
	{X: 4374, Y: 35, Z: -4240},
	{X: 4368, Y: 35, Z: -4232},
	{X: 4374, Y: 35, Z: -4232},
}

var naronBenh = newStructure(upperAnchors[:], lowerAnchors[:])

// NaronBenh returns the Naron Benh structure.
func NaronBenh() *Structure {
	return naronBenh
}
