package manifest

import (
	"strconv"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"go.trai.ch/nosave/internal/core/domain"
)

var _ easyjson.Unmarshaler = (*manifestDTO)(nil)

// manifestDTO is the decoded form of package.json.
// peerDependencies is kept as an ordered list because installation order
// follows the order of the keys in the file.
type manifestDTO struct {
	Name                string
	Version             string
	Dependencies        map[string]string
	DevDependencies     map[string]string
	PeerDependencies    []domain.Dependency
	HasPeerDependencies bool
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface.
func (out *manifestDTO) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "name":
			out.Name, _ = scalarString(in.Interface())
		case "version":
			out.Version, _ = scalarString(in.Interface())
		case "dependencies":
			out.Dependencies = decodeStringMap(in)
		case "devDependencies":
			out.DevDependencies = decodeStringMap(in)
		case "peerDependencies":
			out.PeerDependencies = decodeDependencyList(in)
			out.HasPeerDependencies = true
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (out *manifestDTO) toDomain() *domain.Manifest {
	m := &domain.Manifest{
		Name:                out.Name,
		Version:             out.Version,
		Dependencies:        out.Dependencies,
		DevDependencies:     out.DevDependencies,
		PeerDependencies:    out.PeerDependencies,
		HasPeerDependencies: out.HasPeerDependencies,
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	if m.DevDependencies == nil {
		m.DevDependencies = map[string]string{}
	}
	return m
}

// decodeStringMap reads an object of name/version pairs.
// Entries whose value is not a string or number are dropped.
func decodeStringMap(in *jlexer.Lexer) map[string]string {
	out := make(map[string]string)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		if v, ok := scalarString(in.Interface()); ok {
			out[key] = v
		}
		in.WantComma()
	}
	in.Delim('}')
	return out
}

// decodeDependencyList reads an object of name/range pairs in document order.
// A repeated name keeps its first position and takes the last value.
func decodeDependencyList(in *jlexer.Lexer) []domain.Dependency {
	out := make([]domain.Dependency, 0, 4)
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		if v, ok := scalarString(in.Interface()); ok {
			out = appendDependency(out, domain.Dependency{Name: key, Range: v})
		}
		in.WantComma()
	}
	in.Delim('}')
	return out
}

// appendDependency adds dep, or overwrites the range of an earlier entry with the same name.
func appendDependency(deps []domain.Dependency, dep domain.Dependency) []domain.Dependency {
	for i := range deps {
		if deps[i].Name == dep.Name {
			deps[i].Range = dep.Range
			return deps
		}
	}
	return append(deps, dep)
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}
