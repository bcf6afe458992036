package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// SectionKind names one of the dependency sections of a package manifest.
type SectionKind string

const (
	SectionDependencies     SectionKind = "dependencies"
	SectionDevDependencies  SectionKind = "devDependencies"
	SectionPeerDependencies SectionKind = "peerDependencies"

	manifestIndent = "  "
	nameField      = "name"
)

// SectionKinds lists the audited sections in the order they are reported.
//
//nolint:gochecknoglobals // fixed set of manifest sections
var SectionKinds = []SectionKind{
	SectionDependencies,
	SectionDevDependencies,
	SectionPeerDependencies,
}

var errManifestNotObject = errors.New("manifest is not a JSON object")

// DependencySection is an ordered, read-only view of a dependency section.
// Entries whose value is not a string are left out of the view.
type DependencySection struct {
	names    []string
	versions map[string]string
}

// NewDependencySection builds a section from ordered name/version pairs.
func NewDependencySection(pairs ...[2]string) DependencySection {
	section := DependencySection{versions: make(map[string]string, len(pairs))}
	for _, pair := range pairs {
		section.add(pair[0], pair[1])
	}
	return section
}

func (s *DependencySection) add(name, version string) {
	if s.versions == nil {
		s.versions = map[string]string{}
	}
	if _, exists := s.versions[name]; !exists {
		s.names = append(s.names, name)
	}
	s.versions[name] = version
}

// Names returns the entry names in declaration order.
func (s DependencySection) Names() []string { return s.names }

// Version returns the declared version of name.
func (s DependencySection) Version(name string) (string, bool) {
	version, ok := s.versions[name]
	return version, ok
}

// Len returns the number of string entries.
func (s DependencySection) Len() int { return len(s.names) }

// Map returns a copy of the entries, used for debug output.
func (s DependencySection) Map() map[string]string {
	copied := make(map[string]string, len(s.versions))
	for name, version := range s.versions {
		copied[name] = version
	}
	return copied
}

// Manifest is a parsed package manifest. The document keeps the original key
// order so that a rewrite only changes the corrected versions. Path is kept
// beside the document and never serialized.
type Manifest struct {
	Path     string
	document *orderedmap.OrderedMap
}

// ParseManifest decodes raw manifest content read from path.
func ParseManifest(path string, data []byte) (Manifest, error) {
	document := orderedmap.New()
	document.SetEscapeHTML(false)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Manifest{}, &ManifestError{Path: path, Err: errManifestNotObject}
	}
	if err := json.Unmarshal(trimmed, document); err != nil {
		return Manifest{}, &ManifestError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	return Manifest{Path: path, document: document}, nil
}

// Name returns the declared package name, or an empty string.
func (m Manifest) Name() string {
	if m.document == nil {
		return ""
	}
	value, ok := m.document.Get(nameField)
	if !ok {
		return ""
	}
	name, _ := value.(string)
	return name
}

// DisplayName returns the declared name, falling back to the path.
func (m Manifest) DisplayName() string {
	if name := m.Name(); name != "" {
		return name
	}
	return m.Path
}

// HasSection reports whether the manifest declares the section at all.
func (m Manifest) HasSection(kind SectionKind) bool {
	_, ok := m.rawSection(kind)
	return ok
}

// Section returns the string entries of a section; absent sections are empty.
func (m Manifest) Section(kind SectionKind) DependencySection {
	raw, ok := m.rawSection(kind)
	if !ok {
		return DependencySection{}
	}

	section := DependencySection{versions: make(map[string]string, len(raw.Keys()))}
	for _, name := range raw.Keys() {
		value, _ := raw.Get(name)
		if version, isString := value.(string); isString {
			section.add(name, version)
		}
	}
	return section
}

// Patch returns a copy of the manifest with the candidate entries of each
// section pinned to the exact expected version, specifier dropped. Sections
// without candidates are carried over as they are, and the receiver is left
// untouched.
func (m Manifest) Patch(lists CandidateLists) Manifest {
	patched := orderedmap.New()
	patched.SetEscapeHTML(false)
	if m.document == nil {
		return Manifest{Path: m.Path, document: patched}
	}

	for _, key := range m.document.Keys() {
		value, _ := m.document.Get(key)
		patched.Set(key, value)
	}

	for _, kind := range SectionKinds {
		candidates := lists.For(kind)
		if len(candidates) == 0 {
			continue
		}

		section := orderedmap.New()
		section.SetEscapeHTML(false)
		if raw, ok := m.rawSection(kind); ok {
			for _, name := range raw.Keys() {
				value, _ := raw.Get(name)
				section.Set(name, value)
			}
		}
		for _, candidate := range candidates {
			section.Set(candidate.Name, candidate.Expected)
		}
		patched.Set(string(kind), section)
	}

	return Manifest{Path: m.Path, document: patched}
}

// Encode serializes the document with two-space indentation and a trailing
// newline, without HTML escaping.
func (m Manifest) Encode() ([]byte, error) {
	if m.document == nil {
		return []byte("{}\n"), nil
	}

	compact, err := m.document.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	var buffer bytes.Buffer
	if indentErr := json.Indent(&buffer, compact, "", manifestIndent); indentErr != nil {
		return nil, fmt.Errorf("failed to indent manifest: %w", indentErr)
	}
	buffer.WriteByte('\n')
	return buffer.Bytes(), nil
}

func (m Manifest) rawSection(kind SectionKind) (*orderedmap.OrderedMap, bool) {
	if m.document == nil {
		return nil, false
	}
	value, ok := m.document.Get(string(kind))
	if !ok {
		return nil, false
	}

	switch typed := value.(type) {
	case orderedmap.OrderedMap:
		return &typed, true
	case *orderedmap.OrderedMap:
		return typed, true
	default:
		return nil, false
	}
}
