//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/codependence/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create resolved settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder starts from the default settings in CLI mode.
func NewSettingsBuilder() *SettingsBuilder {
	settings := entities.DefaultSettings()
	settings.IsCLI = true
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    settings,
	}
}

// WithCodependencies sets the tracked packages.
func (b *SettingsBuilder) WithCodependencies(packages ...entities.TrackedPackage) *SettingsBuilder {
	b.settings.Codependencies = packages
	return b
}

// WithFiles sets the manifest patterns.
func (b *SettingsBuilder) WithFiles(patterns ...string) *SettingsBuilder {
	b.settings.Files = patterns
	return b
}

// WithRootDir sets the scan root.
func (b *SettingsBuilder) WithRootDir(rootDir string) *SettingsBuilder {
	b.settings.RootDir = rootDir
	return b
}

// WithUpdate toggles update mode.
func (b *SettingsBuilder) WithUpdate(update bool) *SettingsBuilder {
	b.settings.Update = update
	return b
}

// WithDebug toggles debug events.
func (b *SettingsBuilder) WithDebug(debug bool) *SettingsBuilder {
	b.settings.Debug = debug
	return b
}

// WithSilent toggles per-mismatch reporting.
func (b *SettingsBuilder) WithSilent(silent bool) *SettingsBuilder {
	b.settings.Silent = silent
	return b
}

// WithIsTesting toggles dry-run mode.
func (b *SettingsBuilder) WithIsTesting(isTesting bool) *SettingsBuilder {
	b.settings.IsTesting = isTesting
	return b
}

// WithVersionSource sets the version source name.
func (b *SettingsBuilder) WithVersionSource(source string) *SettingsBuilder {
	b.settings.VersionSource = source
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() entities.Settings {
	return b.settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = entities.DefaultSettings()
	b.settings.IsCLI = true
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	settings := b.settings
	settings.Codependencies = append([]entities.TrackedPackage(nil), b.settings.Codependencies...)
	settings.Files = append([]string(nil), b.settings.Files...)
	settings.Ignore = append([]string(nil), b.settings.Ignore...)
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    settings,
	}
}
