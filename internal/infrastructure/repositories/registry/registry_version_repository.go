package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

const (
	sourceName     = "registry"
	requestTimeout = 15 * time.Second
)

var errMissingVersion = errors.New("registry response has no version")

// RegistryVersionRepository implements repositories.VersionRepository on top
// of the npm registry HTTP API (`GET <registry>/<name>/latest`).
type RegistryVersionRepository struct {
	baseURL string
	client  *http.Client
}

// NewRegistryVersionRepository creates a registry backed version source.
func NewRegistryVersionRepository(settings entities.Settings) repositories.VersionRepository {
	baseURL := settings.RegistryURL
	if baseURL == "" {
		baseURL = entities.DefaultRegistryURL
	}
	return &RegistryVersionRepository{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (it *RegistryVersionRepository) Name() string { return sourceName }

type latestManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Latest fetches the manifest of the "latest" dist-tag and returns its version.
func (it *RegistryVersionRepository) Latest(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, it.latestURL(name), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := it.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code for %s: %d", name, resp.StatusCode)
	}

	var manifest latestManifest
	if decodeErr := json.NewDecoder(resp.Body).Decode(&manifest); decodeErr != nil {
		return "", fmt.Errorf("failed to parse registry response for %s: %w", name, decodeErr)
	}
	if manifest.Version == "" {
		return "", errMissingVersion
	}
	return manifest.Version, nil
}

// latestURL escapes each path segment so scoped names keep their slash.
func (it *RegistryVersionRepository) latestURL(name string) string {
	segments := strings.Split(name, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return it.baseURL + "/" + strings.Join(segments, "/") + "/latest"
}
