package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nosave/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nosave/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(reader, log), nil
		},
	})
}
