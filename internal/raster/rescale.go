package raster

// USGS Collection 2 Level-2 surface reflectance scaling.
const (
	reflectanceScale  = 0.0000275
	reflectanceOffset = -0.2
	sentinelDivisor   = 10000.0
)

// CanonicalBands is the shared channel schema every rescale variant
// produces, so any rescaled scene can feed the same visualization spec.
// The trailing S2 channel flags the sensor family (0 Landsat, 1
// Sentinel-2).
var CanonicalBands = []string{"blue", "green", "red", "nir", "swir1", "swir2", "S2"}

var (
	legacyLandsatBands = []string{"SR_B1", "SR_B2", "SR_B3", "SR_B4", "SR_B5", "SR_B7"}
	modernLandsatBands = []string{"SR_B2", "SR_B3", "SR_B4", "SR_B5", "SR_B6", "SR_B7"}
	sentinel2Bands     = []string{"B2", "B3", "B4", "B8", "B11", "B12"}
)

// LegacyLandsatBands lists the raw surface-reflectance bands of the
// Landsat 4/5/7 missions, in canonical channel order.
func LegacyLandsatBands() []string {
	out := make([]string, len(legacyLandsatBands))
	copy(out, legacyLandsatBands)
	return out
}

// ModernLandsatBands lists the raw surface-reflectance bands of the
// Landsat 8/9 missions, in canonical channel order.
func ModernLandsatBands() []string {
	out := make([]string, len(modernLandsatBands))
	copy(out, modernLandsatBands)
	return out
}

// Sentinel2Bands lists the raw Sentinel-2 bands, in canonical channel
// order.
func Sentinel2Bands() []string {
	out := make([]string, len(sentinel2Bands))
	copy(out, sentinel2Bands)
	return out
}

// ScaleL457 rescales a raw Landsat 4/5/7 scene to surface reflectance on
// the canonical channel schema.
func ScaleL457(img *Scene) (*Scene, error) {
	return scaleLinear(img, legacyLandsatBands, reflectanceScale, reflectanceOffset, 0)
}

// ScaleL89 rescales a raw Landsat 8/9 scene to surface reflectance on the
// canonical channel schema.
func ScaleL89(img *Scene) (*Scene, error) {
	return scaleLinear(img, modernLandsatBands, reflectanceScale, reflectanceOffset, 0)
}

// ScaleS2 rescales a raw Sentinel-2 scene to surface reflectance on the
// canonical channel schema.
func ScaleS2(img *Scene) (*Scene, error) {
	return scaleLinear(img, sentinel2Bands, 1/sentinelDivisor, 0, 1)
}

// scaleLinear applies value*scale+offset to each raw band, renames the
// result to the canonical schema, appends the constant sensor-flag channel
// and copies the acquisition timestamp. All other source metadata is
// dropped. No clamping.
func scaleLinear(img *Scene, rawBands []string, scale, offset, sensorFlag float64) (*Scene, error) {
	out := NewScene(img.AcquiredAt)

	var width, height int
	for i, raw := range rawBands {
		grid, err := img.Band(raw)
		if err != nil {
			return nil, err
		}

		height = len(grid)
		if height > 0 {
			width = len(grid[0])
		}

		scaled := make([][]float64, height)
		for y := range grid {
			scaled[y] = make([]float64, len(grid[y]))
			for x, value := range grid[y] {
				scaled[y][x] = value*scale + offset
			}
		}
		out.AddBand(CanonicalBands[i], scaled)
	}

	out.AddBand(CanonicalBands[len(CanonicalBands)-1], constantGrid(width, height, sensorFlag))
	return out, nil
}

func constantGrid(width, height int, value float64) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
		for x := range grid[y] {
			grid[y][x] = value
		}
	}
	return grid
}
