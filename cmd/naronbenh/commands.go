package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/wurstmineberg/naronbenh/internal/chart"
	"github.com/wurstmineberg/naronbenh/internal/config"
	"github.com/wurstmineberg/naronbenh/internal/export"
	"github.com/wurstmineberg/naronbenh/pkg/naronbenh"
	"github.com/wurstmineberg/naronbenh/pkg/raster"
)

// Output file names below the output directory.
const (
	perimeterImageName = "perimeter"
	buildingDumpName   = "naron-benh-building.bin"
	perimeterDumpName  = "naron-benh-perimeter.bin"
	areaChartName      = "building-area.png"
)

// usageError is reported with exit status 2.
type usageError string

func (e usageError) Error() string { return string(e) }

type app struct {
	cfg    *config.Config
	out    io.Writer
	log    *zap.Logger
	render *naronbenh.Renderer
}

func newApp(cfg *config.Config, out io.Writer, log *zap.Logger) *app {
	r := naronbenh.NewRenderer(log)
	r.Workers = cfg.Render.Workers
	r.BuildingArea = cfg.Building
	r.PerimeterArea = cfg.Perimeter
	return &app{cfg: cfg, out: out, log: log, render: r}
}

func (a *app) dispatch(command string, args []string) (int, error) {
	switch command {
	case "check-building":
		return a.cmdCheckBuilding(args)
	case "check-perimeter":
		return a.cmdCheckPerimeter(args)
	case "draw-building":
		return exitOK, a.cmdDrawBuilding()
	case "draw-perimeter":
		return exitOK, a.cmdDrawPerimeter()
	case "dump-building":
		return exitOK, a.cmdDumpBuilding()
	case "dump-perimeter":
		return exitOK, a.cmdDumpPerimeter()
	case "plot-building":
		return exitOK, a.cmdPlotBuilding()
	case "write-config":
		return exitOK, a.cmdWriteConfig(args)
	case "help", "-h", "--help":
		printUsage(a.out)
		return exitOK, nil
	default:
		return exitUsage, usageError(fmt.Sprintf("Unknown command: %s (see naronbenh help)", command))
	}
}

// parseCoords parses exactly len(names) 16-bit block coordinates.
func parseCoords(args []string, names ...string) ([]int16, error) {
	if len(args) != len(names) {
		return nil, usageError(fmt.Sprintf("expected %d coordinates (%v), got %d", len(names), names, len(args)))
	}
	out := make([]int16, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return nil, usageError(fmt.Sprintf("invalid %s coordinate %q: must be an integer in [-32768, 32767]", names[i], s))
		}
		out[i] = int16(v)
	}
	return out, nil
}

func exitFor(inside bool) int {
	if inside {
		return exitOK
	}
	return exitOutside
}

func (a *app) cmdCheckBuilding(args []string) (int, error) {
	c, err := parseCoords(args, "x", "y", "z")
	if err != nil {
		return exitUsage, err
	}
	inside := naronbenh.InBuilding(c[0], c[1], c[2])
	if inside {
		fmt.Fprintf(a.out, "%d %d %d is within the Naron Benh building\n", c[0], c[1], c[2])
	} else {
		fmt.Fprintf(a.out, "%d %d %d is OUTSIDE the Naron Benh building\n", c[0], c[1], c[2])
	}
	return exitFor(inside), nil
}

func (a *app) cmdCheckPerimeter(args []string) (int, error) {
	c, err := parseCoords(args, "x", "z")
	if err != nil {
		return exitUsage, err
	}
	inside := naronbenh.InPerimeter(c[0], c[1])
	if inside {
		fmt.Fprintf(a.out, "%d %d is within the Naron Benh perimeter\n", c[0], c[1])
	} else {
		fmt.Fprintf(a.out, "%d %d is OUTSIDE the Naron Benh perimeter\n", c[0], c[1])
	}
	return exitFor(inside), nil
}

func (a *app) imageWriter() (*export.ImageWriter, error) {
	return export.NewImageWriter(a.cfg.Render.OutputDir, a.cfg.Render.Format)
}

func (a *app) cmdDrawBuilding() error {
	iw, err := a.imageWriter()
	if err != nil {
		return err
	}
	a.log.Info("rendering building layers", zap.Stringer("area", a.cfg.Building))
	for y := naronbenh.MinY; y < naronbenh.MaxY; y++ {
		img := a.render.Building(int16(y))
		path, err := iw.Save(filepath.Join("building", fmt.Sprintf("y%d", y)), img)
		if err != nil {
			return fmt.Errorf("saving layer y=%d: %w", y, err)
		}
		a.log.Debug("saved layer", zap.Int("y", y), zap.String("path", path))
	}
	fmt.Fprintf(a.out, "Rendered %d layers to %s\n", naronbenh.MaxY-naronbenh.MinY, filepath.Join(a.cfg.Render.OutputDir, "building"))
	return nil
}

func (a *app) cmdDrawPerimeter() error {
	iw, err := a.imageWriter()
	if err != nil {
		return err
	}
	img := a.render.Perimeter()
	a.log.Info("creating image")
	path, err := iw.Save(perimeterImageName, img)
	if err != nil {
		return fmt.Errorf("saving perimeter: %w", err)
	}
	fmt.Fprintf(a.out, "Rendered perimeter (%d columns inside) to %s\n", raster.Count(img), path)
	return nil
}

func (a *app) cmdDumpBuilding() error {
	path := filepath.Join(a.cfg.Render.OutputDir, buildingDumpName)
	n, err := export.WriteLayers(path, a.render.BuildingLayers())
	if err != nil {
		return fmt.Errorf("dumping building: %w", err)
	}
	fmt.Fprintf(a.out, "Wrote %d layers to %s\n", n, path)
	return nil
}

func (a *app) cmdDumpPerimeter() error {
	path := filepath.Join(a.cfg.Render.OutputDir, perimeterDumpName)
	n, err := export.WriteRows(path, a.render.PerimeterRows())
	if err != nil {
		return fmt.Errorf("dumping perimeter: %w", err)
	}
	fmt.Fprintf(a.out, "Wrote %d rows to %s\n", n, path)
	return nil
}

func (a *app) cmdPlotBuilding() error {
	var areas []chart.LayerArea
	for layer := range a.render.BuildingLayers() {
		areas = append(areas, chart.LayerArea{Y: int(layer.Y), Cells: layer.Count()})
	}

	path := filepath.Join(a.cfg.Render.OutputDir, areaChartName)
	if err := chart.SaveLayerAreas(path, areas); err != nil {
		return err
	}
	if peak, ok := chart.Peak(areas); ok {
		fmt.Fprintf(a.out, "Peak area %d at y=%d, volume %d\n", peak.Cells, peak.Y, chart.Volume(areas))
	}
	fmt.Fprintf(a.out, "Wrote chart to %s\n", path)
	return nil
}

func (a *app) cmdWriteConfig(args []string) error {
	if len(args) != 1 {
		return usageError("Usage: naronbenh write-config <path>")
	}
	if err := a.cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(a.out, "Wrote config to %s\n", args[0])
	return nil
}
