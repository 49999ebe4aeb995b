package main

import (
	"fmt"
	"os"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/paulmach/orb"
	"github.com/tundra-watch/scene-check-poc/internal/cache"
	"github.com/tundra-watch/scene-check-poc/internal/catalog"
	"github.com/tundra-watch/scene-check-poc/internal/display"
	"github.com/tundra-watch/scene-check-poc/internal/properties"
	"github.com/tundra-watch/scene-check-poc/internal/raster"
	"github.com/tundra-watch/scene-check-poc/internal/selector"
	"github.com/tundra-watch/scene-check-poc/internal/utils"
	"github.com/tundra-watch/scene-check-poc/output"
)

func printBanner() {
	figure1 := figure.NewFigure("Scene", "isometric1", true)
	figure2 := figure.NewFigure("Check", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func fatal(err error) {
	fmt.Printf("\n\033[31m%s\033[0m\n", err.Error())
	os.Exit(1)
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("\033[33mNo .env file found, using process environment.\033[0m")
	}

	printBanner()
	godal.RegisterAll()

	// Point of interest and base seasonal window. One coordinate, one
	// three-month season, compared across three years.
	roi := orb.Point{-110.3, 67.5}
	timeStart := time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC)
	timeStop := time.Date(2015, time.September, 15, 0, 0, 0, 0, time.UTC)

	executor, err := catalog.NewHTTPExecutor()
	if err != nil {
		fatal(err)
	}

	sel := selector.New(cache.NewCachingExecutor(executor), catalog.ModernLandsat(), roi, timeStart, timeStop)

	offsets := []int{-1, 0, 1}
	results := make([]*selector.Result, 0, len(offsets))
	for _, offset := range offsets {
		result, err := sel.SelectOffset(offset)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s: %d\n", result.Label, result.CandidateCount())
		results = append(results, result)
	}

	selected := make([]catalog.SceneRef, 0, len(results))
	for _, result := range results {
		selected = append(selected, result.Selected)
	}

	scenes, err := raster.FetchScenes(executor, selected, raster.ModernLandsatBands())
	if err != nil {
		fatal(err)
	}

	labeled := make([]output.LabeledScene, 0, len(results))
	for _, result := range results {
		scene, ok := scenes[result.Selected.AcquiredAt]
		if !ok {
			fatal(fmt.Errorf("no raster fetched for scene %s", result.Selected.ID))
		}
		scaled, err := raster.ScaleL89(scene)
		if err != nil {
			fatal(err)
		}
		labeled = append(labeled, output.LabeledScene{Label: result.Label, Scene: scaled})
	}

	composites, err := output.CreateCompositeImages(labeled, display.DefaultViz)
	if err != nil {
		fatal(err)
	}

	host, err := display.NewWebhookHost()
	if err != nil {
		fatal(err)
	}

	for i, result := range results {
		layer := display.Layer{
			Name:      result.Label,
			SceneID:   result.Selected.ID,
			Viz:       display.DefaultViz,
			Visible:   result.Visible,
			ImagePath: composites[i],
		}
		if err := host.AddLayer(layer); err != nil {
			fatal(err)
		}
	}

	rows := make([]output.CandidateRow, 0)
	for _, result := range results {
		rows = append(rows, output.CandidateRows(result.Label, result.Candidates)...)
	}
	reportPath, err := output.CreateCandidateReport(rows, "candidates")
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\033[32mCandidate report written to %s\033[0m\n", reportPath)

	frames := make(map[time.Time]string, len(results))
	for i, result := range results {
		frames[result.Selected.AcquiredAt] = composites[i]
	}
	framePaths := make([]string, 0, len(frames))
	for _, date := range utils.SortedKeys(frames, true) {
		framePaths = append(framePaths, frames[date])
	}
	videoPath, err := output.CreateComparisonVideo(framePaths, fmt.Sprintf("%s/data/result/comparison", properties.RootPath()))
	if err != nil {
		fatal(err)
	}
	fmt.Printf("\033[32mComparison video written to %s\033[0m\n", videoPath)

	fmt.Println("\033[32mAll three seasonal layers registered with the map host.\033[0m")
}
