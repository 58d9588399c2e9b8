package cache

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Kxvin1/life-dashboard/internal/adapters/logger"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

const (
	// RegistryNodeID is the unique identifier for the cache registry Graft node.
	RegistryNodeID graft.ID = "cache.registry"
	// BridgeNodeID is the unique identifier for the subscription bridge Graft node.
	BridgeNodeID graft.ID = "cache.bridge"
)

func init() {
	// Registry Node. Cacheable so the whole application shares one instance.
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	// Bridge Node
	graft.Register(graft.Node[*Bridge]{
		ID:        BridgeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Bridge, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBridge(registry, log), nil
		},
	})
}
