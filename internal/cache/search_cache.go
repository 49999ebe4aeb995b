package cache

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tundra-watch/scene-check-poc/internal/catalog"
	"github.com/tundra-watch/scene-check-poc/internal/properties"
)

type searchEntry struct {
	Refs      []catalog.SceneRef `json:"refs"`
	CreatedAt time.Time          `json:"created_at"`
	Checksum  string             `json:"checksum"`
}

// SearchCache keeps catalog search results on disk so repeated runs against
// the same window skip the remote round trip. Entries expire, since the
// catalog keeps ingesting new scenes.
type SearchCache struct {
	cacheDir string
	ttl      time.Duration
}

func NewSearchCache(subDir string, ttl time.Duration) *SearchCache {
	cacheDir := filepath.Join(properties.RootPath(), "data", subDir)
	return &SearchCache{cacheDir: cacheDir, ttl: ttl}
}

func (sc *SearchCache) GenerateKey(params ...interface{}) string {
	var keyData string
	for _, param := range params {
		keyData += fmt.Sprintf("%v_", param)
	}
	h := sha1.New()
	h.Write([]byte(keyData))
	return hex.EncodeToString(h.Sum(nil))
}

func (sc *SearchCache) Get(key string) ([]catalog.SceneRef, bool) {
	cacheFile := filepath.Join(sc.cacheDir, key+".json")

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, false
	}

	var entry searchEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if sc.ttl > 0 && time.Since(entry.CreatedAt) > sc.ttl {
		return nil, false
	}

	if entry.Checksum != calculateChecksum(entry.Refs) {
		return nil, false
	}

	return entry.Refs, true
}

func (sc *SearchCache) Set(key string, refs []catalog.SceneRef) error {
	if err := os.MkdirAll(sc.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %v", err)
	}

	entry := searchEntry{
		Refs:      refs,
		CreatedAt: time.Now(),
		Checksum:  calculateChecksum(refs),
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %v", err)
	}

	cacheFile := filepath.Join(sc.cacheDir, key+".json")
	tmpFile := cacheFile + ".tmp"

	if err := os.WriteFile(tmpFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp cache file: %v", err)
	}

	if err := os.Rename(tmpFile, cacheFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp cache file: %v", err)
	}

	return nil
}

func calculateChecksum(refs []catalog.SceneRef) string {
	jsonData, _ := json.Marshal(refs)
	hash := md5.Sum(jsonData)
	return hex.EncodeToString(hash[:])
}
