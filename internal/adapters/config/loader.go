// Package config provides the configuration loader for the dashboard client.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// ConfigPathEnv overrides the location of the config file.
const ConfigPathEnv = "LIFEDASH_CONFIG"

// Loader implements ports.ConfigLoader using a YAML file overlaid with
// LIFEDASH_* environment variables.
type Loader struct {
	path string
}

// NewLoader creates a Loader resolving the config file path from the
// LIFEDASH_CONFIG environment variable, falling back to the user config dir.
func NewLoader() *Loader {
	path := os.Getenv(ConfigPathEnv)
	if path == "" {
		path = domain.DefaultConfigPath()
	}
	return &Loader{path: path}
}

// NewLoaderWithPath creates a Loader for an explicit config file path.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Load resolves the configuration. A missing config file is not an error:
// defaults apply and the environment still overrides them.
func (l *Loader) Load() (*domain.Config, error) {
	var schema fileSchema

	data, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.With(domain.ErrConfigReadFailed, "path", l.path)
	default:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			parseErr := zerr.With(domain.ErrConfigParseFailed, "path", l.path)
			return nil, zerr.With(parseErr, "cause", err.Error())
		}
	}

	if err := env.Parse(&schema); err != nil {
		return nil, zerr.With(domain.ErrConfigParseFailed, "cause", err.Error())
	}

	return resolve(schema), nil
}

// resolve applies defaults and normalizes the schema into a domain.Config.
func resolve(schema fileSchema) *domain.Config {
	cfg := &domain.Config{
		APIURL:       strings.TrimRight(schema.APIURL, "/"),
		Timeout:      time.Duration(schema.TimeoutSeconds) * time.Second,
		TokenPath:    schema.TokenPath,
		TraceEnabled: schema.Trace,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = domain.DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultRequestTimeout
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = domain.DefaultTokenPath()
	}
	return cfg
}

var _ ports.ConfigLoader = (*Loader)(nil)
