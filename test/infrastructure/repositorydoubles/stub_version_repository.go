//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

// StubVersionRepository implements repositories.VersionRepository with
// canned answers. It is safe for the concurrent lookups of a resolution.
type StubVersionRepository struct {
	SourceName string
	Versions   map[string]string // name -> raw output, newline included if wanted
	Errors     map[string]error  // name -> failure

	mu      sync.Mutex
	queried []string
}

var _ repositories.VersionRepository = (*StubVersionRepository)(nil)

func (s *StubVersionRepository) Name() string {
	if s.SourceName == "" {
		return "stub"
	}
	return s.SourceName
}

func (s *StubVersionRepository) Latest(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	s.queried = append(s.queried, name)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := s.Errors[name]; ok {
		return "", err
	}
	if version, ok := s.Versions[name]; ok {
		return version, nil
	}
	return "", fmt.Errorf("no such package: %s", name)
}

// Queried returns the looked-up names in lexical order.
func (s *StubVersionRepository) Queried() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := append([]string(nil), s.queried...)
	sort.Strings(names)
	return names
}

// Factory adapts the stub to a version source registry entry.
func (s *StubVersionRepository) Factory() func(entities.Settings) repositories.VersionRepository {
	return func(entities.Settings) repositories.VersionRepository { return s }
}
