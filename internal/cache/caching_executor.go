package cache

import (
	"time"

	"github.com/tundra-watch/scene-check-poc/internal/catalog"
)

// CachingExecutor wraps a catalog executor with the on-disk search cache.
type CachingExecutor struct {
	inner catalog.Executor
	store *SearchCache
}

func NewCachingExecutor(inner catalog.Executor) *CachingExecutor {
	return &CachingExecutor{
		inner: inner,
		store: NewSearchCache("searches", 24*time.Hour),
	}
}

func (ce *CachingExecutor) Search(query catalog.Query) ([]catalog.SceneRef, error) {
	start, end, _ := query.Window()
	keyParams := []interface{}{
		query.Collection().Name(),
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
		query.SortDesc(),
		query.MaxResults(),
	}
	if pt := query.Point(); pt != nil {
		keyParams = append(keyParams, pt.Lon(), pt.Lat())
	}
	key := ce.store.GenerateKey(keyParams...)

	if refs, ok := ce.store.Get(key); ok {
		return refs, nil
	}

	refs, err := ce.inner.Search(query)
	if err != nil {
		return nil, err
	}

	// A failed cache write never fails the search.
	_ = ce.store.Set(key, refs)

	return refs, nil
}
