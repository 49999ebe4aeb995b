package catalog

import (
	"sort"
	"time"

	"github.com/paulmach/orb"
)

// SceneRef is one catalog search hit. It carries scene metadata only; pixel
// data is fetched separately through a Fetcher.
type SceneRef struct {
	ID         string    `json:"id"`
	Mission    string    `json:"mission"`
	AcquiredAt time.Time `json:"acquired_at"`
	CloudCover float64   `json:"cloud_cover"`
	DataHref   string    `json:"data_href"`
}

// Query is an immutable description of a catalog search. Builder methods
// return a copy; nothing is sent to the service until an Executor
// materializes the query.
type Query struct {
	collection Collection
	point      *orb.Point
	start, end time.Time
	hasWindow  bool
	sortDesc   bool
	limit      int
}

func NewQuery(c Collection) Query {
	return Query{collection: c, limit: 100}
}

// FilterBounds restricts results to scenes whose footprint contains the
// given point.
func (q Query) FilterBounds(pt orb.Point) Query {
	q.point = &pt
	return q
}

// FilterDate restricts results to scenes acquired inside [start, end).
func (q Query) FilterDate(start, end time.Time) Query {
	q.start = start
	q.end = end
	q.hasWindow = true
	return q
}

// SortByAcquiredDesc orders results most-recent first.
func (q Query) SortByAcquiredDesc() Query {
	q.sortDesc = true
	return q
}

func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

func (q Query) Collection() Collection { return q.collection }

func (q Query) Point() *orb.Point { return q.point }

func (q Query) Window() (time.Time, time.Time, bool) {
	return q.start, q.end, q.hasWindow
}

func (q Query) SortDesc() bool { return q.sortDesc }

func (q Query) MaxResults() int { return q.limit }

// Executor materializes a deferred query into concrete scene references.
type Executor interface {
	Search(query Query) ([]SceneRef, error)
}

// Fetcher retrieves the raw raster of a referenced scene as a GeoTIFF,
// limited to the requested bands.
type Fetcher interface {
	FetchGeoTIFF(ref SceneRef, bands []string) ([]byte, error)
}

// SortRefsByAcquiredDesc orders refs most-recent first. The sort is stable,
// so acquisition-time ties keep the order the catalog returned them in.
func SortRefsByAcquiredDesc(refs []SceneRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].AcquiredAt.After(refs[j].AcquiredAt)
	})
}
