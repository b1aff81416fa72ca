package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/core/ports"
)

// StoreNodeID is the unique identifier for the snapshot store Graft node.
const StoreNodeID graft.ID = "adapter.fs.store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStore, error) {
			return NewStore(), nil
		},
	})
}
