//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codependence/internal/domain/commands"
	"github.com/rios0rios0/codependence/internal/domain/entities"
	infraRepos "github.com/rios0rios0/codependence/internal/infrastructure/repositories"
	"github.com/rios0rios0/codependence/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/codependence/test/infrastructure/repositorydoubles"
)

func newSourceRegistry(source *doubles.StubVersionRepository) *infraRepos.VersionSourceRegistry {
	registry := infraRepos.NewVersionSourceRegistry()
	registry.Register(entities.DefaultVersionSource, source.Factory())
	return registry
}

func outdatedManifest() string {
	return entitybuilders.NewManifestBuilder().
		WithName("app").
		WithDependency(entities.SectionDependencies, "foo", "^1.0.0").
		WithDependency(entities.SectionDependencies, "bar", "2.0.0").
		BuildString()
}

func TestCheckCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report a clean scan when every version matches", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{
			Matches: []string{"package.json"},
			Files:   map[string]string{"package.json": outdatedManifest()},
		}
		notifier := &doubles.SpyNotifierRepository{}
		cmd := commands.NewCheckCommand(newSourceRegistry(&doubles.StubVersionRepository{}), manifests, notifier)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.0.0")).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeClean, result.Outcome)
		assert.Equal(t, 1, result.Scanned)
		assert.Empty(t, result.NeedingUpdate)
		assert.Empty(t, manifests.Writes)
		assert.Contains(t, notifier.Messages(entities.EventInfo), "no dependency issues found!")
	})

	t.Run("should fail without update when a version is out of date", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{
			Matches: []string{"package.json"},
			Files:   map[string]string{"package.json": outdatedManifest()},
		}
		notifier := &doubles.SpyNotifierRepository{}
		cmd := commands.NewCheckCommand(newSourceRegistry(&doubles.StubVersionRepository{}), manifests, notifier)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.True(t, result.Failed())
		assert.Equal(t, []string{"package.json"}, result.NeedingUpdate)
		assert.Empty(t, manifests.Writes)
		warnings := notifier.AtLevel(entities.EventWarn)
		require.Len(t, warnings, 1)
		assert.Equal(t, "app", warnings[0].Scope)
		assert.Contains(t, notifier.Messages(entities.EventError), "dependencies are not correct")
	})

	t.Run("should rewrite the manifest with the expected version in update mode", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{
			Matches: []string{"package.json"},
			Files:   map[string]string{"package.json": outdatedManifest()},
		}
		notifier := &doubles.SpyNotifierRepository{}
		source := &doubles.StubVersionRepository{Versions: map[string]string{"foo": "1.2.0\n"}}
		cmd := commands.NewCheckCommand(newSourceRegistry(source), manifests, notifier)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewTrackedPackage("foo")).
			WithUpdate(true).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OutcomeUpdated, result.Outcome)
		assert.False(t, result.Failed())
		assert.Equal(t, []string{"package.json"}, result.Written)
		want := entitybuilders.NewManifestBuilder().
			WithName("app").
			WithDependency(entities.SectionDependencies, "foo", "1.2.0").
			WithDependency(entities.SectionDependencies, "bar", "2.0.0").
			BuildString()
		assert.Equal(t, want, manifests.Writes["package.json"])
		assert.Contains(t, notifier.Messages(entities.EventInfo),
			"dependencies were not correct but should be updated! Check your git status.")
	})

	t.Run("should not write anything in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{
			Matches: []string{"package.json"},
			Files:   map[string]string{"package.json": outdatedManifest()},
		}
		notifier := &doubles.SpyNotifierRepository{}
		cmd := commands.NewCheckCommand(newSourceRegistry(&doubles.StubVersionRepository{}), manifests, notifier)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			WithUpdate(true).
			WithIsTesting(true).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, manifests.Writes)
		assert.Empty(t, result.Written)
		assert.Equal(t, entities.OutcomeUpdated, result.Outcome)
		assert.Contains(t, notifier.Messages(entities.EventInfo), "[DRY RUN] Would rewrite package.json")
	})

	t.Run("should fail before matching or reading when no codependencies are given", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{Matches: []string{"package.json"}}
		source := &doubles.StubVersionRepository{}
		cmd := commands.NewCheckCommand(newSourceRegistry(source), manifests, &doubles.DummyNotifierRepository{})
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.ErrorIs(t, err, entities.ErrCodependenciesRequired)
		assert.Nil(t, result)
		assert.Zero(t, manifests.MatchCalls)
		assert.Empty(t, manifests.ReadPaths)
		assert.Empty(t, source.Queried())
	})

	t.Run("should propagate a read failure", func(t *testing.T) {
		t.Parallel()

		// given
		readErr := errors.New("permission denied")
		manifests := &doubles.SpyManifestRepository{Matches: []string{"package.json"}, ReadErr: readErr}
		cmd := commands.NewCheckCommand(
			newSourceRegistry(&doubles.StubVersionRepository{}), manifests, &doubles.DummyNotifierRepository{},
		)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		var manifestErr *entities.ManifestError
		require.ErrorAs(t, err, &manifestErr)
		assert.Equal(t, "package.json", manifestErr.Path)
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("should propagate a write failure", func(t *testing.T) {
		t.Parallel()

		// given
		writeErr := errors.New("read-only file system")
		manifests := &doubles.SpyManifestRepository{
			Matches:  []string{"package.json"},
			Files:    map[string]string{"package.json": outdatedManifest()},
			WriteErr: writeErr,
		}
		cmd := commands.NewCheckCommand(
			newSourceRegistry(&doubles.StubVersionRepository{}), manifests, &doubles.DummyNotifierRepository{},
		)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			WithUpdate(true).
			BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		assert.ErrorIs(t, err, writeErr)
	})

	t.Run("should propagate a match failure", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{MatchErr: errors.New("invalid root directory")}
		cmd := commands.NewCheckCommand(
			newSourceRegistry(&doubles.StubVersionRepository{}), manifests, &doubles.DummyNotifierRepository{},
		)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to match manifest files")
		assert.Empty(t, manifests.ReadPaths)
	})

	t.Run("should fail on an unknown version source", func(t *testing.T) {
		t.Parallel()

		// given
		manifests := &doubles.SpyManifestRepository{}
		cmd := commands.NewCheckCommand(
			newSourceRegistry(&doubles.StubVersionRepository{}), manifests, &doubles.DummyNotifierRepository{},
		)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			WithVersionSource("pypi").
			BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		require.ErrorIs(t, err, entities.ErrUnknownVersionSource)
		assert.Zero(t, manifests.MatchCalls)
	})

	t.Run("should scan every matched manifest and only write the outdated ones", func(t *testing.T) {
		t.Parallel()

		// given
		upToDate := entitybuilders.NewManifestBuilder().
			WithName("lib").
			WithDependency(entities.SectionPeerDependencies, "foo", "~1.2.0").
			BuildString()
		manifests := &doubles.SpyManifestRepository{
			Matches: []string{"package.json", "packages/lib/package.json"},
			Files: map[string]string{
				"package.json":              outdatedManifest(),
				"packages/lib/package.json": upToDate,
			},
		}
		cmd := commands.NewCheckCommand(
			newSourceRegistry(&doubles.StubVersionRepository{}), manifests, &doubles.SpyNotifierRepository{},
		)
		settings := entitybuilders.NewSettingsBuilder().
			WithCodependencies(entities.NewPinnedPackage("foo", "1.2.0")).
			WithUpdate(true).
			WithDebug(true).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, result.Scanned)
		assert.Equal(t, []string{"package.json"}, result.Written)
		assert.NotContains(t, manifests.Writes, "packages/lib/package.json")
	})
}
