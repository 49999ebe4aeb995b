package display

// VizSpec maps three scene channels positionally onto the host's red,
// green and blue display channels.
type VizSpec struct {
	Bands [3]string `json:"bands"`
}

// DefaultViz is the shared false-color composite: swir1 on red, nir on
// green, red on blue. Every rescaled scene uses the same channel names, so
// one spec serves all layers.
var DefaultViz = VizSpec{Bands: [3]string{"swir1", "nir", "red"}}

// Layer is one composite registered with the map display host.
type Layer struct {
	Name      string
	SceneID   string
	Viz       VizSpec
	Visible   bool
	ImagePath string
}

// Host is the map display application the composites are pushed to.
// Registration is one-way; no render confirmation is consumed.
type Host interface {
	AddLayer(layer Layer) error
}
