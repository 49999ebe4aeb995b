package catalog

// Landsat Collection 2 Level-2 and Sentinel-2 mission identifiers as named
// by the catalog service.
const (
	MissionLandsat4  = "LANDSAT/LM04/C02/T1_L2" // 1982-1993
	MissionLandsat5  = "LANDSAT/LT05/C02/T1_L2" // 1984-2012
	MissionLandsat7  = "LANDSAT/LE07/C02/T1_L2" // 1999-pres
	MissionLandsat8  = "LANDSAT/LC08/C02/T1_L2" // 2013-pres
	MissionLandsat9  = "LANDSAT/LC09/C02/T1_L2" // 2021-pres
	MissionSentinel2 = "COPERNICUS/S2_SR_HARMONIZED"
)

// Collection is a named group of missions that share a band-naming
// convention. Scenes of every member mission are queried together.
type Collection struct {
	name     string
	missions []string
}

func NewCollection(name string, missions ...string) Collection {
	return Collection{name: name, missions: missions}
}

func (c Collection) Name() string {
	return c.name
}

func (c Collection) Missions() []string {
	out := make([]string, len(c.missions))
	copy(out, c.missions)
	return out
}

// Merge concatenates two collections. All member missions are preserved;
// geographic or temporal overlap between them is tolerated and left to be
// resolved by sorting at query time.
func (c Collection) Merge(other Collection) Collection {
	missions := make([]string, 0, len(c.missions)+len(other.missions))
	missions = append(missions, c.missions...)
	missions = append(missions, other.missions...)
	return Collection{name: c.name + other.name, missions: missions}
}

// LegacyLandsat groups the Landsat 4/5/7 missions (TM/ETM+ band layout).
func LegacyLandsat() Collection {
	l4 := NewCollection("L4", MissionLandsat4)
	l5 := NewCollection("L5", MissionLandsat5)
	l7 := NewCollection("L7", MissionLandsat7)
	return l4.Merge(l5).Merge(l7)
}

// ModernLandsat groups the Landsat 8/9 missions (OLI band layout).
func ModernLandsat() Collection {
	l8 := NewCollection("L8", MissionLandsat8)
	l9 := NewCollection("L9", MissionLandsat9)
	return l8.Merge(l9)
}

func Sentinel2() Collection {
	return NewCollection("S2", MissionSentinel2)
}
