package raster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAcquiredAt = time.Date(2015, time.August, 12, 18, 30, 0, 0, time.UTC)

func newRawScene(bandNames []string, value float64) *Scene {
	scene := NewScene(testAcquiredAt)
	for _, name := range bandNames {
		scene.AddBand(name, [][]float64{{value, value + 1}, {value + 2, value + 3}})
	}
	return scene
}

func TestScaleL89ChannelSchema(t *testing.T) {
	scaled, err := ScaleL89(newRawScene(ModernLandsatBands(), 10000))
	require.NoError(t, err)

	assert.Equal(t, []string{"blue", "green", "red", "nir", "swir1", "swir2", "S2"}, scaled.BandNames())
}

func TestScaleL89LinearRescale(t *testing.T) {
	raw := 21503.0
	scaled, err := ScaleL89(newRawScene(ModernLandsatBands(), raw))
	require.NoError(t, err)

	for _, name := range []string{"blue", "green", "red", "nir", "swir1", "swir2"} {
		grid, err := scaled.Band(name)
		require.NoError(t, err)
		assert.InDelta(t, raw*0.0000275-0.2, grid[0][0], 1e-9, "band %s", name)
	}
}

func TestScaleL89NoClamping(t *testing.T) {
	// Values below the valid sensor range map below zero untouched.
	scaled, err := ScaleL89(newRawScene(ModernLandsatBands(), 0))
	require.NoError(t, err)

	grid, err := scaled.Band("red")
	require.NoError(t, err)
	assert.InDelta(t, -0.2, grid[0][0], 1e-9)
}

func TestScaleL89SensorFlagZero(t *testing.T) {
	scaled, err := ScaleL89(newRawScene(ModernLandsatBands(), 10000))
	require.NoError(t, err)

	grid, err := scaled.Band("S2")
	require.NoError(t, err)
	for y := range grid {
		for x := range grid[y] {
			assert.Zero(t, grid[y][x])
		}
	}
}

func TestScaleL457SelectsLegacyBands(t *testing.T) {
	scaled, err := ScaleL457(newRawScene(LegacyLandsatBands(), 18000))
	require.NoError(t, err)

	assert.Equal(t, CanonicalBands, scaled.BandNames())

	grid, err := scaled.Band("swir2")
	require.NoError(t, err)
	assert.InDelta(t, 18000*0.0000275-0.2, grid[0][0], 1e-9)
}

func TestScaleL457RejectsModernBandLayout(t *testing.T) {
	_, err := ScaleL457(newRawScene([]string{"SR_B2", "SR_B3", "SR_B4", "SR_B5", "SR_B6", "SR_B7"}, 18000))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SR_B1")
}

func TestScaleS2DividesByTenThousand(t *testing.T) {
	scaled, err := ScaleS2(newRawScene(Sentinel2Bands(), 4500))
	require.NoError(t, err)

	grid, err := scaled.Band("nir")
	require.NoError(t, err)
	assert.InDelta(t, 0.45, grid[0][0], 1e-9)

	flag, err := scaled.Band("S2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, flag[0][0])
}

func TestScalePreservesAcquisitionTime(t *testing.T) {
	for _, tc := range []struct {
		name  string
		scale func(*Scene) (*Scene, error)
		bands []string
	}{
		{"L457", ScaleL457, LegacyLandsatBands()},
		{"L89", ScaleL89, ModernLandsatBands()},
		{"S2", ScaleS2, Sentinel2Bands()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scaled, err := tc.scale(newRawScene(tc.bands, 12000))
			require.NoError(t, err)
			assert.Equal(t, testAcquiredAt, scaled.AcquiredAt)
		})
	}
}

func TestScaleMissingBandFails(t *testing.T) {
	scene := NewScene(testAcquiredAt)
	scene.AddBand("SR_B2", [][]float64{{1}})

	_, err := ScaleL89(scene)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no band named")
}
