package entities

const (
	caretSpecifier = "^"
	tildeSpecifier = "~"
)

// VersionSpec is a declared version split into its range specifier and the
// bare version that follows it.
type VersionSpec struct {
	Specifier   string // "", "^" or "~"
	BareVersion string
}

// String reassembles the original version string.
func (v VersionSpec) String() string {
	return v.Specifier + v.BareVersion
}

// ParseVersionSpec inspects only the first character of version. Anything
// after an optional "^" or "~" is kept as an opaque string.
func ParseVersionSpec(version string) VersionSpec {
	if version == "" {
		return VersionSpec{}
	}

	first := version[:1]
	if first == caretSpecifier || first == tildeSpecifier {
		return VersionSpec{Specifier: first, BareVersion: version[1:]}
	}
	return VersionSpec{BareVersion: version}
}
