package entities

import (
	"context"
	"sort"
)

// LatestVersionFunc queries an external source for the latest published
// version of a package and returns its raw output.
type LatestVersionFunc func(ctx context.Context, name string) (string, error)

// ExpectedVersions maps a tracked package name to the exact version every
// manifest should declare.
type ExpectedVersions map[string]string

// Names returns the tracked names in lexical order.
func (e ExpectedVersions) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VersionResolution is the outcome of resolving one tracked package.
type VersionResolution struct {
	Package TrackedPackage
	Name    string
	Version string
	Err     error
}

// Contributes reports whether the resolution adds a pair to ExpectedVersions.
func (r VersionResolution) Contributes() bool {
	return r.Err == nil && r.Name != "" && r.Version != ""
}

// NewExpectedVersions aggregates resolutions in order; later pairs for the
// same name overwrite earlier ones and non-contributing results are dropped.
func NewExpectedVersions(resolutions []VersionResolution) ExpectedVersions {
	expected := make(ExpectedVersions, len(resolutions))
	for _, resolution := range resolutions {
		if !resolution.Contributes() {
			continue
		}
		expected[resolution.Name] = resolution.Version
	}
	return expected
}
