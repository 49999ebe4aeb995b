package utils

import (
	"sort"
	"time"
)

// SortTimes orders ts in place, oldest first when asc is true.
func SortTimes(ts []time.Time, asc bool) []time.Time {
	sort.Slice(ts, func(i, j int) bool {
		if asc {
			return ts[i].Before(ts[j])
		}
		return ts[i].After(ts[j])
	})
	return ts
}

// SortedKeys returns the keys of a time-keyed map, oldest first when asc is
// true.
func SortedKeys[T any](m map[time.Time]T, asc bool) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return SortTimes(keys, asc)
}
