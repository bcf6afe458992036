package filesystem

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

const defaultFileMode = 0o644

// FileManifestRepository implements repositories.ManifestRepository on the
// local filesystem, expanding "**" patterns with doublestar.
type FileManifestRepository struct{}

// NewFileManifestRepository creates a filesystem backed manifest repository.
func NewFileManifestRepository() repositories.ManifestRepository {
	return &FileManifestRepository{}
}

// Match expands patterns under rootDir. Ignore patterns are matched against
// the same root-relative, slash-separated paths.
func (it *FileManifestRepository) Match(
	ctx context.Context,
	rootDir string,
	patterns, ignore []string,
) ([]string, error) {
	if rootDir == "" {
		rootDir = "."
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("invalid root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root directory %q is not a directory", rootDir)
	}

	ignorePatterns := make([]string, 0, len(ignore))
	for _, pattern := range ignore {
		ignorePatterns = append(ignorePatterns, normalizePattern(pattern))
	}

	fsys := os.DirFS(rootDir)
	seen := make(map[string]struct{})
	matches := make([]string, 0)

	for _, pattern := range patterns {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		found, globErr := doublestar.Glob(fsys, normalizePattern(pattern), doublestar.WithFilesOnly())
		if globErr != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, globErr)
		}
		sort.Strings(found)

		for _, candidate := range found {
			if _, duplicate := seen[candidate]; duplicate {
				continue
			}
			ignored, ignoreErr := isIgnored(candidate, ignorePatterns)
			if ignoreErr != nil {
				return nil, ignoreErr
			}
			if ignored {
				continue
			}
			seen[candidate] = struct{}{}
			matches = append(matches, candidate)
		}
	}

	return matches, nil
}

// Read returns the raw manifest content.
func (it *FileManifestRepository) Read(_ context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return data, nil
}

// Write overwrites the manifest in one call, keeping its permissions.
func (it *FileManifestRepository) Write(_ context.Context, filePath string, data []byte) error {
	mode := os.FileMode(defaultFileMode)
	if info, err := os.Stat(filePath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(filePath, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

// normalizePattern turns a user pattern into the unrooted, slash-separated
// form that io/fs based globbing expects ("./package.json" -> "package.json").
func normalizePattern(pattern string) string {
	cleaned := path.Clean(filepath.ToSlash(strings.TrimSpace(pattern)))
	return strings.TrimPrefix(cleaned, "./")
}

func isIgnored(candidate string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
