package repositories

import (
	"context"
)

// VersionRepository abstracts a source of published package versions
// (the npm CLI, the npm registry HTTP API, etc.).
type VersionRepository interface {
	// Name returns the source identifier (e.g. "npm", "registry").
	Name() string

	// Latest returns the raw latest-version output for the package. Callers
	// strip trailing newlines and treat an empty result as a failure.
	Latest(ctx context.Context, name string) (string, error)
}
