// Package manifest decodes package manifests for peer dependency resolution.
package manifest

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailru/easyjson"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader.
type Reader struct {
	// BaseDir anchors relative reference paths.
	BaseDir string
}

// NewReader creates a Reader resolving relative references against baseDir.
func NewReader(baseDir string) *Reader {
	return &Reader{BaseDir: baseDir}
}

// Decode parses a JSON manifest.
func (r *Reader) Decode(data []byte) (*domain.Manifest, error) {
	m, err := decodeJSON(data)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, err)
	}
	return m, nil
}

// ReadReference loads the manifest at path. A missing file yields nil, nil.
func (r *Reader) ReadReference(path string) (*domain.Manifest, error) {
	resolved := r.Resolve(path)

	data, err := os.ReadFile(resolved) //nolint:gosec // Path is provided by the user on purpose
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil //nolint:nilnil // A missing reference means "no pins"
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrReferenceReadFailed, err), "path", resolved)
	}

	var m *domain.Manifest
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		m, err = decodeYAML(data)
	default:
		m, err = decodeJSON(data)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrReferenceParseFailed, err), "path", resolved)
	}
	return m, nil
}

// Resolve makes path absolute against BaseDir.
func (r *Reader) Resolve(path string) string {
	if filepath.IsAbs(path) || r.BaseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(r.BaseDir, path)
}

func decodeJSON(data []byte) (*domain.Manifest, error) {
	var dto manifestDTO
	if err := easyjson.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}
