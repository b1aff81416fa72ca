package ports

import "go.trai.ch/nosave/internal/core/domain"

// SnapshotStore captures files before the install and puts them back afterwards.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load reads the file at path. A missing file yields a snapshot with Exists false.
	Load(path string) (*domain.Snapshot, error)

	// Restore writes the snapshot back, or removes the file if the snapshot is absent.
	Restore(snap *domain.Snapshot) error

	// Changed reports whether the file on disk differs from the snapshot.
	Changed(snap *domain.Snapshot) (bool, error)
}
