package raster

import (
	"fmt"
	"time"
)

// Scene is one multispectral acquisition held in memory as named band
// grids. Band order is the order bands were added in.
type Scene struct {
	names      []string
	grids      map[string][][]float64
	AcquiredAt time.Time
}

func NewScene(acquiredAt time.Time) *Scene {
	return &Scene{
		grids:      make(map[string][][]float64),
		AcquiredAt: acquiredAt,
	}
}

func (s *Scene) AddBand(name string, grid [][]float64) {
	if _, exists := s.grids[name]; !exists {
		s.names = append(s.names, name)
	}
	s.grids[name] = grid
}

func (s *Scene) Band(name string) ([][]float64, error) {
	grid, ok := s.grids[name]
	if !ok {
		return nil, fmt.Errorf("scene has no band named %q", name)
	}
	return grid, nil
}

func (s *Scene) BandNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Size returns the pixel dimensions of the first band. An empty scene is
// 0x0.
func (s *Scene) Size() (width, height int) {
	if len(s.names) == 0 {
		return 0, 0
	}
	grid := s.grids[s.names[0]]
	height = len(grid)
	if height > 0 {
		width = len(grid[0])
	}
	return width, height
}
