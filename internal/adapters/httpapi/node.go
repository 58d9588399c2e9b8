package httpapi

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Kxvin1/life-dashboard/internal/adapters/config"
	"github.com/Kxvin1/life-dashboard/internal/adapters/session"
	"github.com/Kxvin1/life-dashboard/internal/adapters/telemetry"
	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// NodeID is the unique identifier for the gateway Graft node.
const NodeID graft.ID = "adapter.gateway"

func init() {
	graft.Register(graft.Node[ports.Gateway]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, session.NodeID, cache.RegistryNodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Gateway, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			tokens, err := graft.Dep[ports.TokenStore](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[*cache.Registry](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.APIURL, cfg.Timeout, tokens, registry, tracer), nil
		},
	})
}
