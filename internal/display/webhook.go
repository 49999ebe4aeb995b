package display

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/tundra-watch/scene-check-poc/internal/properties"
)

// WebhookHost registers layers with the GIS host's layer endpoint.
type WebhookHost struct {
	url string
}

func NewWebhookHost() (*WebhookHost, error) {
	url := properties.MapHostURL()
	if url == "" {
		return nil, fmt.Errorf("missing required environment variable: MAP_HOST_URL")
	}
	return &WebhookHost{url: url}, nil
}

type layerPayload struct {
	Name    string   `json:"name"`
	SceneID string   `json:"scene_id"`
	Bands   []string `json:"bands"`
	Visible bool     `json:"visible"`
	Image   string   `json:"image,omitempty"`
}

// AddLayer posts one layer to the host. The rendered composite travels
// inline as base64 PNG.
func (h *WebhookHost) AddLayer(layer Layer) error {
	message := layerPayload{
		Name:    layer.Name,
		SceneID: layer.SceneID,
		Bands:   layer.Viz.Bands[:],
		Visible: layer.Visible,
	}

	if layer.ImagePath != "" {
		imageData, err := os.ReadFile(layer.ImagePath)
		if err != nil {
			return fmt.Errorf("failed to read composite for layer %s: %v", layer.Name, err)
		}
		message.Image = base64.StdEncoding.EncodeToString(imageData)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	resp, err := http.Post(h.url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to add layer %s, status code: %d", layer.Name, resp.StatusCode)
	}

	return nil
}
