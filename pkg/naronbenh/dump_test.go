package naronbenh

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

func TestBuildingLayers(t *testing.T) {
	r := NewRenderer(nil)
	r.BuildingArea = raster.Area{MinX: 4358, MinZ: -4170, MaxX: 4368, MaxZ: -4160}
	r.Workers = 2

	seq := r.BuildingLayers()
	y := MinY
	for layer := range seq {
		if int(layer.Y) != y {
			t.Fatalf("expected layer y=%d, got %d", y, layer.Y)
		}
		if layer.Width != 10 || layer.Height != 10 || layer.MinX != 4358 || layer.MinZ != -4170 {
			t.Errorf("y=%d: unexpected layer geometry %dx%d at (%d, %d)",
				y, layer.Width, layer.Height, layer.MinX, layer.MinZ)
		}
		if diff := cmp.Diff(r.Building(layer.Y).Pix, layer.Cells); diff != "" {
			t.Errorf("y=%d: layer differs from Building() (-want +got):\n%s", y, diff)
		}
		// the centre column is filled from y=-35 to y=138
		inside := layer.Inside(centre.X, centre.Z)
		if want := y >= -35 && y <= 138; inside != want {
			t.Errorf("y=%d: centre inside = %v, want %v", y, inside, want)
		}
		y++
	}
	if y != MaxY {
		t.Errorf("expected layers up to y=%d, stopped at %d", MaxY, y)
	}

	for range seq {
		t.Fatal("second iteration should yield nothing")
	}
}

func TestBuildingLayers_EarlyStop(t *testing.T) {
	r := NewRenderer(nil)
	r.BuildingArea = raster.Area{MinX: 4360, MinZ: -4166, MaxX: 4364, MaxZ: -4162}

	n := 0
	for range r.BuildingLayers() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected 3 layers, got %d", n)
	}
}

func TestPerimeterRows(t *testing.T) {
	r := NewRenderer(nil)
	r.PerimeterArea = edgeArea
	r.Workers = 3
	img := r.Perimeter()

	seq := r.PerimeterRows()
	j := 0
	for row := range seq {
		if int(row.Z) != edgeArea.MinZ+j || int(row.MinX) != edgeArea.MinX {
			t.Fatalf("row %d: unexpected origin z=%d minX=%d", j, row.Z, row.MinX)
		}
		want := img.Pix[j*img.Stride : j*img.Stride+edgeArea.Width()]
		if diff := cmp.Diff(want, row.Cells); diff != "" {
			t.Errorf("row %d differs from Perimeter() (-want +got):\n%s", j, diff)
		}
		j++
	}
	if j != edgeArea.Height() {
		t.Errorf("expected %d rows, got %d", edgeArea.Height(), j)
	}

	for range seq {
		t.Fatal("second iteration should yield nothing")
	}
}
