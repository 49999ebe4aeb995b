package selector

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/tundra-watch/scene-check-poc/internal/catalog"
)

// Result is the outcome of one seasonal window check.
type Result struct {
	Label      string
	Offset     int
	Start, End time.Time
	Candidates []catalog.SceneRef
	Selected   catalog.SceneRef
	// Visible marks the layer that should start enabled on the map host.
	// Only the target-year window does.
	Visible bool
}

// Selector runs the seasonal scene checks: one fixed point of interest, one
// base window, shifted whole calendar years at a time.
type Selector struct {
	executor   catalog.Executor
	collection catalog.Collection
	point      orb.Point
	start, end time.Time
}

func New(executor catalog.Executor, collection catalog.Collection, point orb.Point, start, end time.Time) *Selector {
	return &Selector{
		executor:   executor,
		collection: collection,
		point:      point,
		start:      start,
		end:        end,
	}
}

// Label names a window by its signed year offset: "T-1", "T0", "T+1".
func Label(offset int) string {
	if offset == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%+d", offset)
}

// SelectOffset shifts the base window by offset calendar years, queries the
// collection for scenes covering the point inside the shifted window sorted
// most-recent first, and selects the first candidate. An empty window is an
// error, never a default.
func (s *Selector) SelectOffset(offset int) (*Result, error) {
	start := s.start.AddDate(offset, 0, 0)
	end := s.end.AddDate(offset, 0, 0)
	label := Label(offset)

	query := catalog.NewQuery(s.collection).
		FilterBounds(s.point).
		FilterDate(start, end).
		SortByAcquiredDesc()

	candidates, err := s.executor.Search(query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s: no scene in window %s..%s: index 0 out of range", label,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return &Result{
		Label:      label,
		Offset:     offset,
		Start:      start,
		End:        end,
		Candidates: candidates,
		Selected:   candidates[0],
		Visible:    offset == 0,
	}, nil
}

// CandidateCount is the diagnostic surfaced per window: the index of the
// last candidate rather than the true size. Informational only; selection
// never reads it.
func (r *Result) CandidateCount() int {
	return len(r.Candidates) - 1
}
