//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/codependence/internal/domain/commands"
	"github.com/rios0rios0/codependence/internal/domain/entities"
)

// StubVersionsCommand is a stub implementation of commands.Versions.
type StubVersionsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Expected         entities.ExpectedVersions
	LastSettings     entities.Settings
}

var _ commands.Versions = (*StubVersionsCommand)(nil)

func (s *StubVersionsCommand) Execute(
	_ context.Context,
	settings entities.Settings,
) (entities.ExpectedVersions, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Expected, s.ExecuteErr
}
