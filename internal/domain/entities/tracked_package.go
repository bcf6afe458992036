package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TrackedPackage is a codependency whose version is audited across manifests.
// A bare name asks for the latest published version; a pinned entry carries
// the exact version to expect.
type TrackedPackage struct {
	Name    string
	Version string
	Pinned  bool
	Problem string // set when the descriptor had the wrong shape
}

// NewTrackedPackage returns a descriptor resolved through the version source.
func NewTrackedPackage(name string) TrackedPackage {
	return TrackedPackage{Name: name}
}

// NewPinnedPackage returns a descriptor that never triggers a lookup.
func NewPinnedPackage(name, version string) TrackedPackage {
	return TrackedPackage{Name: name, Version: version, Pinned: true}
}

// Validate reports whether the descriptor can be resolved at all.
func (p TrackedPackage) Validate() error {
	if p.Problem != "" {
		return fmt.Errorf("%w: %s", ErrInvalidTrackedEntry, p.Problem)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: empty package name", ErrInvalidTrackedEntry)
	}
	return nil
}

func (p TrackedPackage) String() string {
	if p.Problem != "" {
		return "<invalid: " + p.Problem + ">"
	}
	if p.Pinned {
		return p.Name + "@" + p.Version
	}
	return p.Name
}

// ParseTrackedPackage reads a command-line item: either a bare package name
// or a JSON object with a single name/version pair, e.g. {"react":"18.2.0"}.
func ParseTrackedPackage(raw string) TrackedPackage {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return NewTrackedPackage(trimmed)
	}

	var mapping map[string]any
	if err := json.Unmarshal([]byte(trimmed), &mapping); err != nil {
		return TrackedPackage{Problem: fmt.Sprintf("cannot parse %q: %v", raw, err)}
	}
	return TrackedPackageFromValue(mapping)
}

// TrackedPackageFromValue converts a decoded configuration value (string or
// single-key mapping) into a descriptor. Other shapes become invalid entries
// so that they can be skipped during resolution instead of failing the load.
func TrackedPackageFromValue(value any) TrackedPackage {
	switch typed := value.(type) {
	case string:
		return NewTrackedPackage(typed)
	case map[string]any:
		if len(typed) != 1 {
			return TrackedPackage{Problem: fmt.Sprintf("expected a single name/version pair, got %d keys", len(typed))}
		}
		for name, version := range typed {
			switch v := version.(type) {
			case string:
				return NewPinnedPackage(name, v)
			case int, int64, float64, bool:
				return NewPinnedPackage(name, fmt.Sprint(v))
			default:
				return TrackedPackage{Problem: fmt.Sprintf("unsupported version value for %q", name)}
			}
		}
	}
	return TrackedPackage{Problem: fmt.Sprintf("unsupported entry of type %T", value)}
}

// TrackedPackagesFromValues converts a decoded list, keeping invalid entries.
func TrackedPackagesFromValues(values []any) []TrackedPackage {
	packages := make([]TrackedPackage, 0, len(values))
	for _, value := range values {
		packages = append(packages, TrackedPackageFromValue(value))
	}
	return packages
}
