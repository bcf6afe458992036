package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrCodependenciesRequired is returned when no tracked packages reach the scan.
	ErrCodependenciesRequired = errors.New(`"codependencies" are required`)

	// ErrInvalidTrackedEntry marks a tracked-package descriptor with the wrong shape.
	ErrInvalidTrackedEntry = errors.New("invalid codependency entry")

	// ErrEmptyVersion is returned when a version lookup succeeds but yields nothing.
	ErrEmptyVersion = errors.New("empty version returned")

	// ErrDependenciesOutOfDate is returned at the CLI edge when mismatches were
	// found and update mode was off.
	ErrDependenciesOutOfDate = errors.New("dependencies are not correct")

	// ErrUnknownVersionSource is returned when settings name an unregistered source.
	ErrUnknownVersionSource = errors.New("unknown version source")
)

// LookupError wraps a failed latest-version query for a single package.
type LookupError struct {
	Name string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up latest version of %q: %v", e.Name, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ManifestError wraps a manifest that could not be read, parsed or written.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }
