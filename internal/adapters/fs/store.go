// Package fs implements the snapshot store on the local filesystem.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

// restoredFileMode is used when a restored file has to be created from scratch.
const restoredFileMode = 0o644

var _ ports.SnapshotStore = (*Store)(nil)

// Store captures and restores whole files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the file at path. A missing file is not an error.
func (s *Store) Load(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if errors.Is(err, iofs.ErrNotExist) {
		return &domain.Snapshot{Path: path}, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrSnapshotReadFailed, err), "path", path)
	}

	return &domain.Snapshot{
		Path:        path,
		Data:        data,
		Exists:      true,
		Fingerprint: Fingerprint(data),
	}, nil
}

// Restore puts the file back the way Load found it. For a snapshot of a
// missing file this removes whatever is there now.
func (s *Store) Restore(snap *domain.Snapshot) error {
	if snap == nil {
		return nil
	}

	if !snap.Exists {
		if err := os.Remove(snap.Path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return zerr.With(errors.Join(domain.ErrRestoreFailed, err), "path", snap.Path)
		}
		return nil
	}

	if err := os.WriteFile(snap.Path, snap.Data, restoredFileMode); err != nil {
		return zerr.With(errors.Join(domain.ErrRestoreFailed, err), "path", snap.Path)
	}
	return nil
}

// Changed reports whether the file on disk no longer matches the snapshot.
func (s *Store) Changed(snap *domain.Snapshot) (bool, error) {
	if snap == nil {
		return false, nil
	}

	_, statErr := os.Stat(snap.Path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, iofs.ErrNotExist) {
		return false, zerr.With(errors.Join(domain.ErrSnapshotReadFailed, statErr), "path", snap.Path)
	}

	if !snap.Exists || !exists {
		return snap.Exists != exists, nil
	}

	sum, err := ComputeFileHash(snap.Path)
	if err != nil {
		return false, errors.Join(domain.ErrSnapshotReadFailed, err)
	}
	return sum != snap.Fingerprint, nil
}
