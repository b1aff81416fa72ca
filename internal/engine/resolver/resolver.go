// Package resolver turns a manifest's peer dependencies into install specifiers.
package resolver

import (
	"fmt"

	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
)

// Resolver picks a version for every peer dependency of a manifest.
type Resolver struct {
	reader ports.ManifestReader
	logger ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(reader ports.ManifestReader, logger ports.Logger) *Resolver {
	return &Resolver{reader: reader, logger: logger}
}

// Resolve decodes manifestData and returns one install specifier per peer
// dependency, in manifest order. It returns nil when the manifest declares
// no peerDependencies.
func (r *Resolver) Resolve(manifestData []byte, pv domain.PeerVersion) ([]string, error) {
	m, err := r.reader.Decode(manifestData)
	if err != nil {
		return nil, err
	}
	if !m.HasPeerDependencies {
		r.logger.Debug("manifest declares no peerDependencies")
		return nil, nil
	}

	var reference *domain.Manifest
	if pv.ReferencePath != "" {
		reference, err = r.reader.ReadReference(pv.ReferencePath)
		if err != nil {
			return nil, err
		}
		if reference == nil {
			r.logger.Debug(fmt.Sprintf("reference manifest %s not found, using %s versions", pv.ReferencePath, pv.Policy))
		}
	}

	specs := make([]string, 0, len(m.PeerDependencies))
	for _, dep := range m.PeerDependencies {
		if pin, ok := reference.Pinned(dep.Name); ok {
			specs = append(specs, domain.Specifier(dep.Name, pin))
			continue
		}
		if reference != nil {
			r.logger.Debug(fmt.Sprintf("%s is not pinned in %s, using %s version", dep.Name, pv.ReferencePath, pv.Policy))
		}
		specs = append(specs, Select(dep, pv.Policy))
	}

	return specs, nil
}

// Select applies a range policy to a single dependency.
func Select(dep domain.Dependency, policy domain.PeerPolicy) string {
	switch policy {
	case domain.PeerPolicyFirst:
		alts := dep.Alternatives()
		return domain.Specifier(dep.Name, alts[0])
	case domain.PeerPolicyLast:
		alts := dep.Alternatives()
		return domain.Specifier(dep.Name, alts[len(alts)-1])
	default:
		return dep.Name
	}
}
