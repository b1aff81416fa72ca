package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nosave/internal/adapters/config"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ValueNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return FromConfig(cfg), nil
		},
	})
}

// FromConfig builds a Logger honoring the configured level and format.
func FromConfig(cfg domain.Config) *Logger {
	l := New(ParseLevel(cfg.LogLevel))
	if cfg.LogFormat == domain.LogFormatJSON {
		l.SetJSON(true)
	}
	return l
}
