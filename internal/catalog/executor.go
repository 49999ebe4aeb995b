package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/tundra-watch/scene-check-poc/internal/properties"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultAPIURL = "https://catalog.tundra-watch.org/api/v1"

// HTTPExecutor runs deferred queries against the remote catalog service.
type HTTPExecutor struct {
	apiURL string
	client *http.Client
}

// NewHTTPExecutor builds an executor authenticated with the OAuth2
// client-credentials flow. Credentials come from the environment.
func NewHTTPExecutor() (*HTTPExecutor, error) {
	clientID := properties.CatalogClientID()
	clientSecret := properties.CatalogClientSecret()
	tokenURL := properties.CatalogTokenURL()
	if clientID == "" || clientSecret == "" || tokenURL == "" {
		return nil, fmt.Errorf("missing required environment variables: CATALOG_CLIENT_ID, CATALOG_CLIENT_SECRET, or CATALOG_TOKEN_URL")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	apiURL := properties.CatalogAPIURL()
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return newExecutor(apiURL, config.Client(context.Background())), nil
}

func newExecutor(apiURL string, client *http.Client) *HTTPExecutor {
	return &HTTPExecutor{apiURL: apiURL, client: client}
}

type searchFeature struct {
	ID         string `json:"id"`
	Collection string `json:"collection"`
	Properties struct {
		Datetime   string  `json:"datetime"`
		CloudCover float64 `json:"eo:cloud_cover"`
	} `json:"properties"`
	Assets struct {
		Data struct {
			Href string `json:"href"`
		} `json:"data"`
	} `json:"assets"`
}

type searchResponse struct {
	Features []searchFeature `json:"features"`
}

// Search sends the query to the catalog's search endpoint and parses the
// matching scene references. This is the blocking round trip; everything
// before it is only query description.
func (e *HTTPExecutor) Search(query Query) ([]SceneRef, error) {
	requestPayload := map[string]interface{}{
		"collections": query.Collection().Missions(),
		"limit":       query.MaxResults(),
	}

	if pt := query.Point(); pt != nil {
		requestPayload["intersects"] = geojson.NewGeometry(*pt)
	}

	if start, end, ok := query.Window(); ok {
		requestPayload["datetime"] = fmt.Sprintf("%s/%s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	if query.SortDesc() {
		requestPayload["sortby"] = []map[string]string{
			{"field": "properties.datetime", "direction": "desc"},
		}
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %v", err)
	}

	response, err := e.client.Post(e.apiURL+"/search", "application/json", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("catalog search request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %v", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog search returned status %d: %s", response.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected search response from catalog: %v", err)
	}

	refs := make([]SceneRef, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		acquired, err := time.Parse(time.RFC3339, feature.Properties.Datetime)
		if err != nil {
			return nil, fmt.Errorf("scene %s has an invalid acquisition time %q: %v", feature.ID, feature.Properties.Datetime, err)
		}
		refs = append(refs, SceneRef{
			ID:         feature.ID,
			Mission:    feature.Collection,
			AcquiredAt: acquired,
			CloudCover: feature.Properties.CloudCover,
			DataHref:   feature.Assets.Data.Href,
		})
	}

	if query.SortDesc() {
		SortRefsByAcquiredDesc(refs)
	}

	return refs, nil
}

// FetchGeoTIFF downloads the selected bands of one scene as a GeoTIFF.
func (e *HTTPExecutor) FetchGeoTIFF(ref SceneRef, bands []string) ([]byte, error) {
	requestPayload := map[string]interface{}{
		"input": map[string]interface{}{
			"scene":   ref.ID,
			"mission": ref.Mission,
		},
		"output": map[string]interface{}{
			"bands":  bands,
			"format": "image/tiff",
		},
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal process payload: %v", err)
	}

	response, err := e.client.Post(e.apiURL+"/process", "application/json", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("catalog process request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read process response: %v", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog process returned status %d for scene %s: %s", response.StatusCode, ref.ID, string(body))
	}

	return body, nil
}
