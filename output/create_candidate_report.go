package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/tundra-watch/scene-check-poc/internal/catalog"
	"github.com/tundra-watch/scene-check-poc/internal/properties"
)

// CandidateRow is one catalog search hit in the inventory report.
type CandidateRow struct {
	Window     string  `csv:"window"`
	SceneID    string  `csv:"scene_id"`
	Mission    string  `csv:"mission"`
	AcquiredAt string  `csv:"acquired_at"`
	CloudCover float64 `csv:"cloud_cover"`
}

// CandidateRows flattens one window's candidates into report rows.
func CandidateRows(window string, refs []catalog.SceneRef) []CandidateRow {
	rows := make([]CandidateRow, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, CandidateRow{
			Window:     window,
			SceneID:    ref.ID,
			Mission:    ref.Mission,
			AcquiredAt: ref.AcquiredAt.Format("2006-01-02 15:04:05"),
			CloudCover: ref.CloudCover,
		})
	}
	return rows
}

// CreateCandidateReport writes the candidate inventory CSV under
// data/result.
func CreateCandidateReport(rows []CandidateRow, name string) (string, error) {
	outputPath := fmt.Sprintf("%s/data/result/%s.csv", properties.RootPath(), name)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create result directory: %v", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to write report: %v", err)
	}

	return outputPath, nil
}
