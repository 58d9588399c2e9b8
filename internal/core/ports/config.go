package ports

import "github.com/Kxvin1/life-dashboard/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration from the config file and environment.
	// A missing config file is not an error; defaults apply.
	Load() (*domain.Config, error)
}
