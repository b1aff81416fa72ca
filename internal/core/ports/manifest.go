package ports

import "go.trai.ch/nosave/internal/core/domain"

// ManifestReader decodes package manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Decode parses the project manifest from its JSON bytes.
	Decode(data []byte) (*domain.Manifest, error)

	// ReadReference loads a manifest used to pin peer versions.
	// It returns nil, nil if the file does not exist.
	ReadReference(path string) (*domain.Manifest, error)
}
