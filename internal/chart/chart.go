// Package chart plots per-height statistics of the building.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LayerArea is the number of building cells in the layer at height Y.
type LayerArea struct {
	Y     int
	Cells int
}

// Peak returns the layer with the most cells, lowest first on ties.
func Peak(areas []LayerArea) (LayerArea, bool) {
	if len(areas) == 0 {
		return LayerArea{}, false
	}
	best := areas[0]
	for _, a := range areas[1:] {
		if a.Cells > best.Cells {
			best = a
		}
	}
	return best, true
}

// Volume returns the total number of cells over all layers.
func Volume(areas []LayerArea) int {
	n := 0
	for _, a := range areas {
		n += a.Cells
	}
	return n
}

// SaveLayerAreas writes a line chart of cell count against height to path.
// The image format follows the file extension (png, svg, pdf, ...).
func SaveLayerAreas(path string, areas []LayerArea) error {
	p := plot.New()
	p.Title.Text = "Naron Benh cross-section area"
	p.X.Label.Text = "y"
	p.Y.Label.Text = "blocks"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(areas))
	for _, a := range areas {
		pts = append(pts, plotter.XY{X: float64(a.Y), Y: float64(a.Cells)})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("area line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if peak, ok := Peak(areas); ok {
		p.Legend.Add(fmt.Sprintf("peak %d at y=%d, volume %d", peak.Cells, peak.Y, Volume(areas)), line)
		p.Legend.Top = true
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save area plot: %w", err)
	}
	return nil
}
