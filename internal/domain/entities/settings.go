package entities

import "time"

const (
	DefaultManifestPattern = "package.json"
	DefaultRootDir         = "./"
	DefaultVersionSource   = "npm"
	DefaultRegistryURL     = "https://registry.npmjs.org"
	DefaultLookupTimeout   = 30 * time.Second
)

// DefaultIgnorePatterns keeps dependency caches out of the scan.
func DefaultIgnorePatterns() []string {
	return []string{"node_modules/**/*", "**/node_modules/**/*"}
}

// Settings is the resolved, read-only configuration of one run.
type Settings struct {
	Codependencies []TrackedPackage
	Files          []string
	RootDir        string
	Ignore         []string
	Update         bool
	Debug          bool
	Silent         bool
	IsCLI          bool
	IsTesting      bool // compute and report, never write
	VersionSource  string
	RegistryURL    string
	Timeout        time.Duration
	Concurrency    int
}

// DefaultSettings returns the bottom configuration layer.
func DefaultSettings() Settings {
	return Settings{
		Files:         []string{DefaultManifestPattern},
		RootDir:       DefaultRootDir,
		Ignore:        DefaultIgnorePatterns(),
		VersionSource: DefaultVersionSource,
		RegistryURL:   DefaultRegistryURL,
		Timeout:       DefaultLookupTimeout,
	}
}

// SettingsLayer is a partial configuration. Nil pointers and nil slices mean
// "not set here" and leave the lower layer's value in place.
type SettingsLayer struct {
	Codependencies []TrackedPackage
	Files          []string
	RootDir        *string
	Ignore         []string
	Update         *bool
	Debug          *bool
	Silent         *bool
	IsCLI          *bool
	IsTesting      *bool
	VersionSource  *string
	RegistryURL    *string
	Timeout        *time.Duration
	Concurrency    *int
}

// ResolveSettings applies layers over DefaultSettings; later layers win.
// Callers pass them lowest precedence first: config file, then CLI.
func ResolveSettings(layers ...SettingsLayer) Settings {
	settings := DefaultSettings()
	for _, layer := range layers {
		settings = layer.applyTo(settings)
	}
	return settings
}

func (l SettingsLayer) applyTo(settings Settings) Settings {
	if l.Codependencies != nil {
		settings.Codependencies = append([]TrackedPackage(nil), l.Codependencies...)
	}
	if l.Files != nil {
		settings.Files = append([]string(nil), l.Files...)
	}
	if l.Ignore != nil {
		settings.Ignore = append([]string(nil), l.Ignore...)
	}
	setString(&settings.RootDir, l.RootDir)
	setString(&settings.VersionSource, l.VersionSource)
	setString(&settings.RegistryURL, l.RegistryURL)
	setBool(&settings.Update, l.Update)
	setBool(&settings.Debug, l.Debug)
	setBool(&settings.Silent, l.Silent)
	setBool(&settings.IsCLI, l.IsCLI)
	setBool(&settings.IsTesting, l.IsTesting)
	if l.Timeout != nil {
		settings.Timeout = *l.Timeout
	}
	if l.Concurrency != nil {
		settings.Concurrency = *l.Concurrency
	}
	return settings
}

func setString(target *string, value *string) {
	if value != nil && *value != "" {
		*target = *value
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
