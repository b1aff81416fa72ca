package domain

import (
	"path/filepath"
	"strings"
)

// PeerPolicy selects a concrete version from a peer dependency range.
type PeerPolicy string

const (
	// PeerPolicyLatest installs the bare package name and lets the installer pick.
	PeerPolicyLatest PeerPolicy = "latest"
	// PeerPolicyFirst installs the first alternative of a "||" range.
	PeerPolicyFirst PeerPolicy = "first"
	// PeerPolicyLast installs the last alternative of a "||" range.
	PeerPolicyLast PeerPolicy = "last"
)

const rangeSeparator = "||"

// referenceExtensions are the manifest formats accepted as a --peer-version reference.
var referenceExtensions = []string{".json", ".yaml", ".yml"}

// PeerVersion is the parsed value of --peer-version.
type PeerVersion struct {
	Policy PeerPolicy
	// ReferencePath is set when the value names a manifest file to read pinned versions from.
	ReferencePath string
}

// ParsePeerVersion interprets a --peer-version value.
// Anything that is neither "first", "last" nor a manifest path means latest.
func ParsePeerVersion(value string) PeerVersion {
	switch PeerPolicy(value) {
	case PeerPolicyFirst, PeerPolicyLast:
		return PeerVersion{Policy: PeerPolicy(value)}
	}

	pv := PeerVersion{Policy: PeerPolicyLatest}
	if IsReferenceManifest(value) {
		pv.ReferencePath = value
	}
	return pv
}

// IsReferenceManifest reports whether value looks like a manifest file path.
func IsReferenceManifest(value string) bool {
	ext := strings.ToLower(filepath.Ext(value))
	for _, e := range referenceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Dependency is a single name/version-range pair from a manifest.
type Dependency struct {
	Name  string
	Range string
}

// Alternatives splits the range on "||" and trims each part.
func (d Dependency) Alternatives() []string {
	parts := strings.Split(d.Range, rangeSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Specifier formats a name@version install argument.
func Specifier(name, version string) string {
	return name + "@" + version
}

// Manifest is the subset of a package manifest the tool reads.
type Manifest struct {
	Name            string
	Version         string
	Dependencies    map[string]string
	DevDependencies map[string]string
	// PeerDependencies keeps the order of the keys in the file.
	PeerDependencies []Dependency
	// HasPeerDependencies is false when the field is absent altogether.
	HasPeerDependencies bool
}

// Pinned returns the version a reference manifest pins for name.
// dependencies wins over devDependencies; empty values do not count.
func (m *Manifest) Pinned(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	if v := m.Dependencies[name]; v != "" {
		return strings.TrimSpace(v), true
	}
	if v := m.DevDependencies[name]; v != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}
