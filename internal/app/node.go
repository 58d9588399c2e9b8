package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/Kxvin1/life-dashboard/internal/adapters/config"
	"github.com/Kxvin1/life-dashboard/internal/adapters/httpapi"
	"github.com/Kxvin1/life-dashboard/internal/adapters/logger"
	"github.com/Kxvin1/life-dashboard/internal/adapters/session"
	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			httpapi.NodeID,
			cache.BridgeNodeID,
			session.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, Config: cfg}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	gateway, err := graft.Dep[ports.Gateway](ctx)
	if err != nil {
		return nil, err
	}
	bridge, err := graft.Dep[*cache.Bridge](ctx)
	if err != nil {
		return nil, err
	}
	tokens, err := graft.Dep[ports.TokenStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	a := New(cfg, gateway, bridge, tokens, log)

	// Follow mode reacts to logins performed in another terminal.
	if fileStore, ok := tokens.(*session.Store); ok {
		watcher := session.NewWatcher(fileStore, bridge, log)
		a = a.WithSessionWatcher(watcher.Run)
	}
	return a, nil
}
