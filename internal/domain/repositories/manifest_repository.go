package repositories

import (
	"context"
)

// ManifestRepository abstracts where manifests live and how their raw
// content is read and written.
type ManifestRepository interface {
	// Match expands glob patterns relative to rootDir, dropping paths that
	// match any ignore pattern. Results are root-relative, de-duplicated and
	// ordered by pattern, then lexically.
	Match(ctx context.Context, rootDir string, patterns, ignore []string) ([]string, error)

	// Read returns the raw content of the manifest at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the manifest at path with data in a single call.
	Write(ctx context.Context, path string, data []byte) error
}
