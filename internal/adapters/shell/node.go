package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/adapters/config"
	"go.trai.ch/nosave/internal/adapters/logger"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ValueNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewInstaller(cfg.Installer, log), nil
		},
	})
}
