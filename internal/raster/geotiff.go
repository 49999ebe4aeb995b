package raster

import (
	"fmt"
	"os"
	"time"

	"github.com/airbusgeo/godal"
)

// SceneFromGeoTIFF decodes a downloaded GeoTIFF into a Scene. The raster's
// bands are assumed to be in the order of bandNames, which is how the
// catalog's process endpoint lays them out.
func SceneFromGeoTIFF(data []byte, bandNames []string, acquiredAt time.Time) (*Scene, error) {
	tmpFile, err := os.CreateTemp("", "scene-*.tiff")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %v", err)
	}
	tmpFile.Close()

	ds, err := godal.Open(tmpPath, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal error %d: %s", code, msg)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoTIFF: %v", err)
	}
	defer ds.Close()

	bands := ds.Bands()
	if len(bands) < len(bandNames) {
		return nil, fmt.Errorf("GeoTIFF has %d bands, expected %d", len(bands), len(bandNames))
	}

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY

	scene := NewScene(acquiredAt)
	for i, name := range bandNames {
		band := bands[i]
		grid := make([][]float64, height)
		for y := 0; y < height; y++ {
			grid[y] = make([]float64, width)
			if err := band.Read(0, y, grid[y], width, 1); err != nil {
				return nil, fmt.Errorf("failed to read data for band %s: %w", name, err)
			}
		}
		scene.AddBand(name, grid)
	}

	return scene, nil
}
