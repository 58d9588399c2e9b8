// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Kxvin1/life-dashboard/internal/adapters/config"
	_ "github.com/Kxvin1/life-dashboard/internal/adapters/httpapi"
	_ "github.com/Kxvin1/life-dashboard/internal/adapters/logger"
	_ "github.com/Kxvin1/life-dashboard/internal/adapters/session"
	_ "github.com/Kxvin1/life-dashboard/internal/adapters/telemetry"
	// Register cache and app nodes.
	_ "github.com/Kxvin1/life-dashboard/internal/app"
	_ "github.com/Kxvin1/life-dashboard/internal/cache"
)
