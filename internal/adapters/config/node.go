package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ValueNodeID is the unique identifier for the resolved configuration node.
	ValueNodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get current working directory")
			}
			return NewLoader(cwd), nil
		},
	})

	graft.Register(graft.Node[domain.Config]{
		ID:        ValueNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}
			return loader.Load()
		},
	})
}
