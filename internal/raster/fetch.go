package raster

import (
	"fmt"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
	"github.com/tundra-watch/scene-check-poc/internal/catalog"
	"github.com/tundra-watch/scene-check-poc/internal/utils"
)

const fetchWorkers = 4

// FetchScenes downloads and decodes the rasters of every referenced scene,
// keyed by acquisition time. Downloads run on a worker pool; the first
// failure is reported after all workers finish.
func FetchScenes(fetcher catalog.Fetcher, refs []catalog.SceneRef, bands []string) (map[time.Time]*Scene, error) {
	scenes := make(map[time.Time]*Scene)
	progressBar := progressbar.Default(int64(len(refs)), "Fetching scenes")

	var firstErr error
	wp := workerpool.New(fetchWorkers)
	for _, ref := range refs {
		ref := ref
		wp.Submit(func() {
			data, err := fetcher.FetchGeoTIFF(ref, bands)
			if err != nil {
				utils.ExecuteWithMutex(func() {
					if firstErr == nil {
						firstErr = fmt.Errorf("failed to fetch scene %s: %w", ref.ID, err)
					}
				})
				return
			}

			scene, err := SceneFromGeoTIFF(data, bands, ref.AcquiredAt)
			if err != nil {
				utils.ExecuteWithMutex(func() {
					if firstErr == nil {
						firstErr = fmt.Errorf("failed to decode scene %s: %w", ref.ID, err)
					}
				})
				return
			}

			utils.ExecuteWithMutex(func() {
				scenes[ref.AcquiredAt] = scene
			})
			progressBar.Add(1)
		})
	}
	wp.StopWait()

	if firstErr != nil {
		return nil, firstErr
	}

	return scenes, nil
}
