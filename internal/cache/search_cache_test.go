package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tundra-watch/scene-check-poc/internal/catalog"
)

func testRefs() []catalog.SceneRef {
	return []catalog.SceneRef{
		{
			ID:         "LC09_042024_20150812",
			Mission:    catalog.MissionLandsat9,
			AcquiredAt: time.Date(2015, time.August, 12, 18, 30, 0, 0, time.UTC),
			CloudCover: 3.0,
		},
	}
}

func TestSearchCacheRoundTrip(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())
	sc := NewSearchCache("searches", time.Hour)

	key := sc.GenerateKey("L8L9", "2015-06-15", "2015-09-15")
	_, ok := sc.Get(key)
	assert.False(t, ok)

	require.NoError(t, sc.Set(key, testRefs()))

	got, ok := sc.Get(key)
	require.True(t, ok)
	assert.Equal(t, testRefs(), got)
}

func TestSearchCacheExpires(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())
	sc := NewSearchCache("searches", time.Nanosecond)

	key := sc.GenerateKey("L8L9")
	require.NoError(t, sc.Set(key, testRefs()))

	time.Sleep(time.Millisecond)
	_, ok := sc.Get(key)
	assert.False(t, ok)
}

func TestGenerateKeyIsDeterministic(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())
	sc := NewSearchCache("searches", time.Hour)

	assert.Equal(t, sc.GenerateKey("a", 1, 2.5), sc.GenerateKey("a", 1, 2.5))
	assert.NotEqual(t, sc.GenerateKey("a", 1), sc.GenerateKey("a", 2))
}

type countingExecutor struct {
	calls int
	refs  []catalog.SceneRef
}

func (c *countingExecutor) Search(query catalog.Query) ([]catalog.SceneRef, error) {
	c.calls++
	return c.refs, nil
}

func TestCachingExecutorSkipsRepeatRoundTrips(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	inner := &countingExecutor{refs: testRefs()}
	ce := NewCachingExecutor(inner)

	start := time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2015, time.September, 15, 0, 0, 0, 0, time.UTC)
	query := catalog.NewQuery(catalog.ModernLandsat()).FilterDate(start, end).SortByAcquiredDesc()

	first, err := ce.Search(query)
	require.NoError(t, err)
	second, err := ce.Search(query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingExecutorSeparatesWindows(t *testing.T) {
	t.Setenv("ROOT_PATH", t.TempDir())

	inner := &countingExecutor{refs: testRefs()}
	ce := NewCachingExecutor(inner)

	start := time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2015, time.September, 15, 0, 0, 0, 0, time.UTC)

	_, err := ce.Search(catalog.NewQuery(catalog.ModernLandsat()).FilterDate(start, end))
	require.NoError(t, err)
	_, err = ce.Search(catalog.NewQuery(catalog.ModernLandsat()).FilterDate(start.AddDate(1, 0, 0), end.AddDate(1, 0, 0)))
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
