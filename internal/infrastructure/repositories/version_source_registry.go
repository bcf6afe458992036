package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	domainRepos "github.com/rios0rios0/codependence/internal/domain/repositories"
)

// VersionSourceFactory builds a version source from the resolved settings.
type VersionSourceFactory func(settings entities.Settings) domainRepos.VersionRepository

// VersionSourceRegistry manages all registered version source implementations.
type VersionSourceRegistry struct {
	sources map[string]VersionSourceFactory
}

// NewVersionSourceRegistry creates an empty version source registry.
func NewVersionSourceRegistry() *VersionSourceRegistry {
	return &VersionSourceRegistry{
		sources: make(map[string]VersionSourceFactory),
	}
}

// Register adds a source factory under the given name (e.g. "npm").
func (r *VersionSourceRegistry) Register(name string, factory VersionSourceFactory) {
	r.sources[name] = factory
}

// Get returns the source named by settings.VersionSource.
func (r *VersionSourceRegistry) Get(settings entities.Settings) (domainRepos.VersionRepository, error) {
	name := settings.VersionSource
	if name == "" {
		name = entities.DefaultVersionSource
	}
	factory, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", entities.ErrUnknownVersionSource, name, r.Names())
	}
	return factory(settings), nil
}

// Names returns the registered source names in lexical order.
func (r *VersionSourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
