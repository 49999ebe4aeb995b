package output

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/icza/mjpeg"
)

const comparisonFPS = 1

// CreateComparisonVideo stitches the window composites, oldest first, into
// a short AVI so the analyst can flip through the three years.
func CreateComparisonVideo(imagePaths []string, outputPath string) (string, error) {
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("no composite images to stitch")
	}
	if !strings.Contains(outputPath, ".avi") {
		outputPath += ".avi"
	}

	firstFile, err := os.Open(imagePaths[0])
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(firstFile)
	firstFile.Close()
	if err != nil {
		return "", err
	}
	bounds := img.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	writer, err := mjpeg.New(outputPath, width, height, comparisonFPS)
	if err != nil {
		return "", err
	}
	defer writer.Close()

	for _, path := range imagePaths {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return "", err
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}); err != nil {
			return "", err
		}

		if err := writer.AddFrame(buf.Bytes()); err != nil {
			return "", err
		}
	}

	return outputPath, nil
}
