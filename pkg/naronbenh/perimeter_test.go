package naronbenh

import (
	"testing"

	"github.com/wurstmineberg/naronbenh/pkg/math"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// columnSet is a columnSource over explicit columns.
type columnSet map[math.Vec2]struct{}

func (s columnSet) ContainsColumn(x, z int) bool {
	_, ok := s[math.Vec2{X: x, Z: z}]
	return ok
}

func (s columnSet) Bounds() math.Box {
	b := math.EmptyBox()
	for c := range s {
		b = b.Extend(c.At(0))
	}
	return b
}

func TestInPerimeter_Window(t *testing.T) {
	src := columnSet{{}: {}}
	tests := []struct {
		name string
		x, z int
		want bool
	}{
		{"on the column", 0, 0, true},
		{"radius east", 128, 0, true},
		{"radius south", 0, 128, true},
		{"radius west is outside the window", -128, 0, false},
		{"radius north is outside the window", 0, -128, false},
		{"one past radius", 129, 0, false},
		{"diagonal inside", 90, 90, true},
		{"diagonal inside negative", -90, -90, true},
		{"diagonal outside", 91, 91, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := inPerimeter(src, tc.x, tc.z); got != tc.want {
				t.Errorf("inPerimeter(%d, %d) = %v, want %v", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestInPerimeter_Empty(t *testing.T) {
	if inPerimeter(columnSet{}, 0, 0) {
		t.Error("empty source should have no perimeter")
	}
}

func TestInPerimeter_Direct(t *testing.T) {
	if !InPerimeter(int16(centre.X), int16(centre.Z)) {
		t.Error("centre column should be within the perimeter")
	}
	// the footprint starts at x >= 4246, 146 blocks away
	if InPerimeter(4100, int16(centre.Z)) {
		t.Error("(4100, -4165) should be outside the perimeter")
	}
	if InPerimeter(0, 0) {
		t.Error("origin should be outside the perimeter")
	}
}

func TestInPerimeter_ContainsFootprint(t *testing.T) {
	area := raster.Area{MinX: 4300, MinZ: -4170, MaxX: 4320, MaxZ: -4160}
	fp := BuildFootprint(naronBenh, area)
	if fp.Len() == 0 {
		t.Fatal("expected structure columns in test area")
	}
	for z := area.MinZ; z < area.MaxZ; z++ {
		for x := area.MinX; x < area.MaxX; x++ {
			if fp.ContainsColumn(x, z) && !InPerimeterOf(fp, x, z) {
				t.Errorf("structure column (%d, %d) is outside its own perimeter", x, z)
			}
		}
	}
}

func TestInPerimeter_ModesAgree(t *testing.T) {
	fp := BuildFootprint(naronBenh, DefaultPerimeterArea.Grow(perimeterRadius))

	var points []math.Vec2
	for x := 4100; x <= 4650; x += 25 {
		points = append(points, math.Vec2{X: x, Z: centre.Z})
	}
	for z := -4400; z <= -3900; z += 25 {
		points = append(points, math.Vec2{X: centre.X, Z: z})
	}

	seen := map[bool]int{}
	for _, p := range points {
		direct := naronBenh.InPerimeter(p.X, p.Z)
		indexed := InPerimeterOf(fp, p.X, p.Z)
		if direct != indexed {
			t.Errorf("(%d, %d): direct=%v indexed=%v", p.X, p.Z, direct, indexed)
		}
		seen[direct]++
	}
	if seen[true] == 0 || seen[false] == 0 {
		t.Errorf("expected both inside and outside samples, got %v", seen)
	}
}

func TestInPerimeter_ModesAgreeGrid(t *testing.T) {
	fp := BuildFootprint(naronBenh, DefaultPerimeterArea.Grow(perimeterRadius))
	b := fp.Bounds()

	seen := map[bool]int{}
	for z := b.Min.Z - perimeterRadius - 8; z <= b.Max.Z+perimeterRadius+8; z += 47 {
		for x := b.Min.X - perimeterRadius - 8; x <= b.Max.X+perimeterRadius+8; x += 47 {
			direct := naronBenh.InPerimeter(x, z)
			indexed := InPerimeterOf(fp, x, z)
			if direct != indexed {
				t.Errorf("(%d, %d): direct=%v indexed=%v", x, z, direct, indexed)
			}
			seen[direct]++
		}
	}
	if seen[true] == 0 || seen[false] == 0 {
		t.Errorf("expected both inside and outside samples, got %v", seen)
	}
}

// scanWindow is inPerimeter without any clipping to the source bounds.
func scanWindow(src columnSet, x, z int) bool {
	q := math.Vec2{X: x, Z: z}
	for dx := x - perimeterRadius; dx < x+perimeterRadius; dx++ {
		for dz := z - perimeterRadius; dz < z+perimeterRadius; dz++ {
			if q.Dist(math.Vec2{X: dx, Z: dz}) <= perimeterRadius && src.ContainsColumn(dx, dz) {
				return true
			}
		}
	}
	return false
}

func TestInPerimeter_ClippedCorners(t *testing.T) {
	src := columnSet{
		{X: 0, Z: 0}:  {},
		{X: 6, Z: 0}:  {},
		{X: 0, Z: 4}:  {},
		{X: 6, Z: 4}:  {},
		{X: 3, Z: -2}: {},
	}
	b := src.Bounds()

	// offsets around each edge of the bounds, including the diagonal
	// radius (90 is inside, 91 is outside) and the window edge
	offsets := []int{0, 1, 89, 90, 91, 92, 127, 128, 129}
	var xs, zs []int
	for _, o := range offsets {
		xs = append(xs, b.Min.X-o, b.Max.X+o)
		zs = append(zs, b.Min.Z-o, b.Max.Z+o)
	}

	for _, z := range zs {
		for _, x := range xs {
			want := scanWindow(src, x, z)
			if got := inPerimeter(src, x, z); got != want {
				t.Errorf("inPerimeter(%d, %d) = %v, unclipped scan %v", x, z, got, want)
			}
		}
	}
}
