package manifest

import (
	"go.trai.ch/nosave/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// yamlManifest mirrors manifestDTO for package.yaml style manifests.
type yamlManifest struct {
	Name             string         `yaml:"name"`
	Version          string         `yaml:"version"`
	Dependencies     map[string]any `yaml:"dependencies"`
	DevDependencies  map[string]any `yaml:"devDependencies"`
	PeerDependencies yaml.Node      `yaml:"peerDependencies"`
}

func decodeYAML(data []byte) (*domain.Manifest, error) {
	var doc yamlManifest
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	dto := manifestDTO{
		Name:            doc.Name,
		Version:         doc.Version,
		Dependencies:    scalarMap(doc.Dependencies),
		DevDependencies: scalarMap(doc.DevDependencies),
	}

	if doc.PeerDependencies.Kind == yaml.MappingNode {
		dto.HasPeerDependencies = true
		content := doc.PeerDependencies.Content
		for i := 0; i+1 < len(content); i += 2 {
			key, value := content[i], content[i+1]
			if value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" {
				continue
			}
			dto.PeerDependencies = appendDependency(dto.PeerDependencies, domain.Dependency{
				Name:  key.Value,
				Range: value.Value,
			})
		}
	}

	return dto.toDomain(), nil
}

func scalarMap(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for name, value := range in {
		if s, ok := scalarString(value); ok {
			out[name] = s
		}
	}
	return out
}
