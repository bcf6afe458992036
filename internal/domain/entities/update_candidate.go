package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Drift describes how a declared version relates to the expected one.
type Drift string

const (
	DriftBehind  Drift = "behind"
	DriftAhead   Drift = "ahead"
	DriftUnknown Drift = "unknown"
)

// UpdateCandidate is a tracked dependency whose declared bare version differs
// from the expected version.
type UpdateCandidate struct {
	Name     string
	Actual   string // declared version, specifier included
	Exact    string // declared version without specifier
	Expected string
}

// Drift compares Exact and Expected as semantic versions. It is informational
// only: the mismatch itself is always an exact string comparison.
func (c UpdateCandidate) Drift() Drift {
	exact := canonicalVersion(c.Exact)
	expected := canonicalVersion(c.Expected)
	if !semver.IsValid(exact) || !semver.IsValid(expected) {
		return DriftUnknown
	}

	switch semver.Compare(exact, expected) {
	case -1:
		return DriftBehind
	case 1:
		return DriftAhead
	default:
		return DriftUnknown
	}
}

func canonicalVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// CandidateLists holds the update candidates of each dependency section.
type CandidateLists struct {
	Dependencies     []UpdateCandidate
	DevDependencies  []UpdateCandidate
	PeerDependencies []UpdateCandidate
}

// For returns the list that belongs to the given section.
func (l CandidateLists) For(kind SectionKind) []UpdateCandidate {
	switch kind {
	case SectionDependencies:
		return l.Dependencies
	case SectionDevDependencies:
		return l.DevDependencies
	case SectionPeerDependencies:
		return l.PeerDependencies
	default:
		return nil
	}
}

// HasUpdates reports whether at least one section needs correcting.
func (l CandidateLists) HasUpdates() bool {
	return len(l.Dependencies) > 0 || len(l.DevDependencies) > 0 || len(l.PeerDependencies) > 0
}

// Count returns the total number of candidates across sections.
func (l CandidateLists) Count() int {
	return len(l.Dependencies) + len(l.DevDependencies) + len(l.PeerDependencies)
}

// DiffSection lists the entries of section that are tracked in expected and
// whose bare version is not exactly the expected one, in section order.
func DiffSection(section DependencySection, expected ExpectedVersions) []UpdateCandidate {
	candidates := make([]UpdateCandidate, 0)
	if section.Len() == 0 || len(expected) == 0 {
		return candidates
	}

	for _, name := range section.Names() {
		want, tracked := expected[name]
		if !tracked {
			continue
		}

		declared, _ := section.Version(name)
		spec := ParseVersionSpec(declared)
		if spec.BareVersion == want {
			continue
		}

		candidates = append(candidates, UpdateCandidate{
			Name:     name,
			Actual:   declared,
			Exact:    spec.BareVersion,
			Expected: want,
		})
	}
	return candidates
}

// DiffManifest runs DiffSection over every audited section of the manifest.
func DiffManifest(manifest Manifest, expected ExpectedVersions) CandidateLists {
	return CandidateLists{
		Dependencies:     DiffSection(manifest.Section(SectionDependencies), expected),
		DevDependencies:  DiffSection(manifest.Section(SectionDevDependencies), expected),
		PeerDependencies: DiffSection(manifest.Section(SectionPeerDependencies), expected),
	}
}
