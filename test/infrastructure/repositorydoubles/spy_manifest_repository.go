//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository over an
// in-memory file set and records every call.
type SpyManifestRepository struct {
	// --- Match ---
	Matches    []string
	MatchErr   error
	MatchCalls int

	// --- Read ---
	Files     map[string]string // path -> content
	ReadErr   error
	ReadPaths []string

	// --- Write ---
	WriteErr error
	Writes   map[string]string // path -> content written
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Match(
	_ context.Context, _ string, _, _ []string,
) ([]string, error) {
	s.MatchCalls++
	return s.Matches, s.MatchErr
}

func (s *SpyManifestRepository) Read(_ context.Context, path string) ([]byte, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	content, ok := s.Files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return []byte(content), nil
}

func (s *SpyManifestRepository) Write(_ context.Context, path string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	if s.Writes == nil {
		s.Writes = make(map[string]string)
	}
	s.Writes[path] = string(data)
	return nil
}
