package output

import (
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tundra-watch/scene-check-poc/internal/display"
	"github.com/tundra-watch/scene-check-poc/internal/raster"
)

func newScaledScene(t *testing.T) *raster.Scene {
	t.Helper()
	scene := raster.NewScene(time.Date(2015, time.August, 12, 0, 0, 0, 0, time.UTC))
	for _, name := range raster.CanonicalBands {
		scene.AddBand(name, [][]float64{{0.1, 0.2}, {0.3, 0.4}})
	}
	return scene
}

func TestCreateCompositeImage(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	path, err := CreateCompositeImage(newScaledScene(t), display.DefaultViz, "T0")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestCreateCompositeImageMissingVizBand(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	scene := raster.NewScene(time.Now())
	scene.AddBand("red", [][]float64{{0.1}})

	_, err := CreateCompositeImage(scene, display.DefaultViz, "T0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swir1")
}

func TestCreateCompositeImagesKeepsOrder(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	scenes := []LabeledScene{
		{Label: "T-1", Scene: newScaledScene(t)},
		{Label: "T0", Scene: newScaledScene(t)},
		{Label: "T+1", Scene: newScaledScene(t)},
	}

	paths, err := CreateCompositeImages(scenes, display.DefaultViz)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Contains(t, paths[0], "T-1.png")
	assert.Contains(t, paths[1], "T0.png")
	assert.Contains(t, paths[2], "T+1.png")
}
