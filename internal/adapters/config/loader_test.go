package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Kxvin1/life-dashboard/internal/adapters/config"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	loader := config.NewLoaderWithPath(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, domain.DefaultAPIURL, cfg.APIURL)
	require.Equal(t, domain.DefaultRequestTimeout, cfg.Timeout)
	require.NotEmpty(t, cfg.TokenPath)
	require.False(t, cfg.TraceEnabled)
}

func TestLoader_ReadsYAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
api_url: https://dash.example.com/
timeout_seconds: 5
token_path: /tmp/lifedash-token
trace: true
`)
	loader := config.NewLoaderWithPath(path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "https://dash.example.com", cfg.APIURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "/tmp/lifedash-token", cfg.TokenPath)
	require.True(t, cfg.TraceEnabled)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
api_url: https://file.example.com
timeout_seconds: 5
`)
	t.Setenv("LIFEDASH_API_URL", "https://env.example.com")
	t.Setenv("LIFEDASH_TIMEOUT_SECONDS", "9")

	loader := config.NewLoaderWithPath(path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.APIURL)
	require.Equal(t, 9*time.Second, cfg.Timeout)
}

func TestLoader_MalformedYAMLFails(t *testing.T) {
	path := writeConfigFile(t, "api_url: [unclosed")
	loader := config.NewLoaderWithPath(path)

	_, err := loader.Load()
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_NegativeTimeoutFallsBackToDefault(t *testing.T) {
	path := writeConfigFile(t, "timeout_seconds: -1")
	loader := config.NewLoaderWithPath(path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRequestTimeout, cfg.Timeout)
}

func TestNewLoader_HonorsConfigPathEnv(t *testing.T) {
	path := writeConfigFile(t, "api_url: https://override.example.com")
	t.Setenv(config.ConfigPathEnv, path)

	cfg, err := config.NewLoader().Load()
	require.NoError(t, err)
	require.Equal(t, "https://override.example.com", cfg.APIURL)
}
