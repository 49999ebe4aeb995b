package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/tundra-watch/scene-check-poc/internal/display"
	"github.com/tundra-watch/scene-check-poc/internal/properties"
	"github.com/tundra-watch/scene-check-poc/internal/raster"
	"golang.org/x/sync/errgroup"
)

// Display stretch for surface reflectance. Values outside the range clamp
// to black/white; the underlying scene data stays unclamped.
const (
	vizMin = 0.0
	vizMax = 0.4
)

// LabeledScene pairs a rescaled scene with its window label.
type LabeledScene struct {
	Label string
	Scene *raster.Scene
}

// CreateCompositeImage renders the three viz channels of a rescaled scene
// into an RGB PNG under data/result.
func CreateCompositeImage(scene *raster.Scene, viz display.VizSpec, name string) (string, error) {
	outputPath := fmt.Sprintf("%s/data/result/%s.png", properties.RootPath(), name)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %v", err)
	}

	channels := make([][][]float64, 3)
	for i, band := range viz.Bands {
		grid, err := scene.Band(band)
		if err != nil {
			return "", err
		}
		channels[i] = grid
	}

	width, height := scene.Size()
	if width == 0 || height == 0 {
		return "", fmt.Errorf("scene %s has no pixels to render", name)
	}

	dc := gg.NewContext(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := stretch(channels[0][y][x])
			g := stretch(channels[1][y][x])
			b := stretch(channels[2][y][x])
			dc.SetRGB(r, g, b)
			dc.SetPixel(x, y)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("failed to save composite image: %v", err)
	}

	return outputPath, nil
}

// CreateCompositeImages renders every labeled scene concurrently and
// returns the output paths in input order.
func CreateCompositeImages(scenes []LabeledScene, viz display.VizSpec) ([]string, error) {
	paths := make([]string, len(scenes))

	var g errgroup.Group
	for i, labeled := range scenes {
		i, labeled := i, labeled
		g.Go(func() error {
			path, err := CreateCompositeImage(labeled.Scene, viz, labeled.Label)
			if err != nil {
				return fmt.Errorf("failed to render composite %s: %w", labeled.Label, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func stretch(value float64) float64 {
	scaled := (value - vizMin) / (vizMax - vizMin)
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return scaled
}
