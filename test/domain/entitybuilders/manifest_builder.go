//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strconv"
	"strings"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

type manifestSection struct {
	kind  entities.SectionKind
	pairs [][2]string
}

// ManifestBuilder helps create package.json content with a fluent interface.
// The output is formatted the way a rewritten manifest is encoded: two-space
// indentation and a trailing newline.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	name     string
	version  string
	sections []manifestSection
}

// NewManifestBuilder creates a new manifest builder with sensible defaults.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-package",
		version:     "1.0.0",
	}
}

// WithName sets the package name; an empty name leaves the field out.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithVersion sets the package version; an empty version leaves the field out.
func (b *ManifestBuilder) WithVersion(version string) *ManifestBuilder {
	b.version = version
	return b
}

// WithDependency appends an entry to the given section, creating it if needed.
func (b *ManifestBuilder) WithDependency(kind entities.SectionKind, name, version string) *ManifestBuilder {
	for i := range b.sections {
		if b.sections[i].kind == kind {
			b.sections[i].pairs = append(b.sections[i].pairs, [2]string{name, version})
			return b
		}
	}
	b.sections = append(b.sections, manifestSection{kind: kind, pairs: [][2]string{{name, version}}})
	return b
}

// Build creates the manifest content (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildString()
}

// BuildString renders the manifest as JSON text.
func (b *ManifestBuilder) BuildString() string {
	fields := make([]string, 0, len(b.sections)+2)
	if b.name != "" {
		fields = append(fields, "  "+strconv.Quote("name")+": "+strconv.Quote(b.name))
	}
	if b.version != "" {
		fields = append(fields, "  "+strconv.Quote("version")+": "+strconv.Quote(b.version))
	}
	for _, section := range b.sections {
		entries := make([]string, 0, len(section.pairs))
		for _, pair := range section.pairs {
			entries = append(entries, "    "+strconv.Quote(pair[0])+": "+strconv.Quote(pair[1]))
		}
		body := "{}"
		if len(entries) > 0 {
			body = "{\n" + strings.Join(entries, ",\n") + "\n  }"
		}
		fields = append(fields, "  "+strconv.Quote(string(section.kind))+": "+body)
	}
	if len(fields) == 0 {
		return "{}\n"
	}
	return "{\n" + strings.Join(fields, ",\n") + "\n}\n"
}

// BuildManifest parses the rendered content into a manifest at path.
func (b *ManifestBuilder) BuildManifest(path string) entities.Manifest {
	manifest, err := entities.ParseManifest(path, []byte(b.BuildString()))
	if err != nil {
		panic(err)
	}
	return manifest
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.version = "1.0.0"
	b.sections = nil
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	sections := make([]manifestSection, len(b.sections))
	for i, section := range b.sections {
		sections[i] = manifestSection{
			kind:  section.kind,
			pairs: append([][2]string(nil), section.pairs...),
		}
	}
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		sections:    sections,
	}
}
