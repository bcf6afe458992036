//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codependence/internal/domain/entities"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveSettings(t *testing.T) {
	t.Parallel()

	t.Run("should return the defaults without layers", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.ResolveSettings()

		// then
		assert.Equal(t, []string{entities.DefaultManifestPattern}, settings.Files)
		assert.Equal(t, entities.DefaultRootDir, settings.RootDir)
		assert.Equal(t, entities.DefaultIgnorePatterns(), settings.Ignore)
		assert.Equal(t, entities.DefaultVersionSource, settings.VersionSource)
		assert.Equal(t, entities.DefaultLookupTimeout, settings.Timeout)
		assert.False(t, settings.Update)
		assert.False(t, settings.IsCLI)
	})

	t.Run("should let later layers win and skip unset values", func(t *testing.T) {
		t.Parallel()

		// given
		fileRoot := "packages"
		fileUpdate := true
		fileLayer := entities.SettingsLayer{
			Codependencies: []entities.TrackedPackage{entities.NewTrackedPackage("react")},
			RootDir:        &fileRoot,
			Update:         &fileUpdate,
		}
		cliUpdate := false
		emptyRoot := ""
		timeout := 5 * time.Second
		cliLayer := entities.SettingsLayer{
			Files:   []string{"**/package.json"},
			RootDir: &emptyRoot,
			Update:  &cliUpdate,
			Timeout: &timeout,
		}

		// when
		settings := entities.ResolveSettings(fileLayer, cliLayer)

		// then
		assert.Equal(t, []entities.TrackedPackage{entities.NewTrackedPackage("react")}, settings.Codependencies)
		assert.Equal(t, "packages", settings.RootDir, "an empty string must not override")
		assert.Equal(t, []string{"**/package.json"}, settings.Files)
		assert.False(t, settings.Update)
		assert.Equal(t, 5*time.Second, settings.Timeout)
	})
}

func TestLoadSettingsLayer(t *testing.T) {
	t.Parallel()

	t.Run("should load a YAML rc file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), ".codependencerc.yaml", `
codependencies:
  - react
  - lodash: 4.17.21
files:
  - "**/package.json"
update: true
timeout: 10s
concurrency: 4
`)

		// when
		layer, err := entities.LoadSettingsLayer(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.TrackedPackage{
			entities.NewTrackedPackage("react"),
			entities.NewPinnedPackage("lodash", "4.17.21"),
		}, layer.Codependencies)
		assert.Equal(t, []string{"**/package.json"}, layer.Files)
		require.NotNil(t, layer.Update)
		assert.True(t, *layer.Update)
		require.NotNil(t, layer.Timeout)
		assert.Equal(t, 10*time.Second, *layer.Timeout)
		require.NotNil(t, layer.Concurrency)
		assert.Equal(t, 4, *layer.Concurrency)
		assert.Nil(t, layer.RootDir)
	})

	t.Run("should load a TOML rc file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), ".codependencerc.toml", `
codependencies = ["react", { lodash = "4.17.21" }]
rootDir = "apps"
source = "registry"
timeout = 3
`)

		// when
		layer, err := entities.LoadSettingsLayer(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.TrackedPackage{
			entities.NewTrackedPackage("react"),
			entities.NewPinnedPackage("lodash", "4.17.21"),
		}, layer.Codependencies)
		require.NotNil(t, layer.RootDir)
		assert.Equal(t, "apps", *layer.RootDir)
		require.NotNil(t, layer.VersionSource)
		assert.Equal(t, "registry", *layer.VersionSource)
		require.NotNil(t, layer.Timeout)
		assert.Equal(t, 3*time.Second, *layer.Timeout)
	})

	t.Run("should read the codependence property of package.json", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "package.json", `{
  "name": "app",
  "codependence": {"codependencies": [{"react": "18.2.0"}], "silent": true}
}`)

		// when
		layer, err := entities.LoadSettingsLayer(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.TrackedPackage{entities.NewPinnedPackage("react", "18.2.0")}, layer.Codependencies)
		require.NotNil(t, layer.Silent)
		assert.True(t, *layer.Silent)
	})

	t.Run("should ignore a package.json without the property", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "package.json", `{"name": "app", "update": true}`)

		// when
		layer, err := entities.LoadSettingsLayer(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.SettingsLayer{}, layer)
	})

	t.Run("should fail on a value of the wrong type", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), ".codependencerc.json", `{"update": "yes"}`)

		// when
		_, err := entities.LoadSettingsLayer(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `key "update"`)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("should skip a package.json without the property", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeConfig(t, dir, "package.json", `{"name": "app"}`)
		rc := writeConfig(t, dir, ".codependencerc", "codependencies: [react]\n")

		// when
		found, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, rc, found)
	})

	t.Run("should prefer package.json when it carries the property", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		pkg := writeConfig(t, dir, "package.json", `{"codependence": {"codependencies": ["react"]}}`)
		writeConfig(t, dir, ".codependencerc", "codependencies: [lodash]\n")

		// when
		found, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, pkg, found)
	})

	t.Run("should report when nothing is found", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.FindConfigFile(t.TempDir())

		// then
		require.Error(t, err)
		assert.True(t, entities.IsConfigNotFound(err))
	})
}
