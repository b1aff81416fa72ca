package manifest

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/adapters/config"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the manifest reader Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ValueNodeID},
		Run: func(ctx context.Context) (ports.ManifestReader, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			base := cfg.InitCwd
			if base == "" {
				if base, err = os.Getwd(); err != nil {
					return nil, zerr.Wrap(err, "failed to get current working directory")
				}
			}
			return NewReader(base), nil
		},
	})
}
