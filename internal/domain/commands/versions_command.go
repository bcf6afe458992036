package commands

import (
	"context"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/codependence/internal/infrastructure/repositories"
)

// Versions is the interface for the versions command.
type Versions interface {
	Execute(ctx context.Context, settings entities.Settings) (entities.ExpectedVersions, error)
}

// VersionsCommand resolves the expected versions without scanning manifests.
type VersionsCommand struct {
	sourceRegistry *infraRepos.VersionSourceRegistry
	notifier       repositories.NotifierRepository
}

// NewVersionsCommand creates a new VersionsCommand.
func NewVersionsCommand(
	sourceRegistry *infraRepos.VersionSourceRegistry,
	notifier repositories.NotifierRepository,
) *VersionsCommand {
	return &VersionsCommand{sourceRegistry: sourceRegistry, notifier: notifier}
}

// Execute resolves and emits one event per package, sorted by name.
func (it *VersionsCommand) Execute(ctx context.Context, settings entities.Settings) (entities.ExpectedVersions, error) {
	if len(settings.Codependencies) == 0 {
		return nil, entities.ErrCodependenciesRequired
	}

	expected, err := resolveExpected(ctx, it.sourceRegistry, it.notifier, settings)
	if err != nil {
		return nil, err
	}

	for _, name := range expected.Names() {
		it.notifier.Notify(entities.NewEvent(entities.EventInfo, name, expected[name]))
	}
	if len(expected) < len(settings.Codependencies) {
		it.notifier.Notify(entities.NewEvent(
			entities.EventWarn, scopeCodependence, "some codependencies could not be resolved (run with --debug for details)",
		))
	}
	return expected, nil
}
