package config

// fileSchema is the on-disk and environment shape of the configuration.
// Environment variables override file values.
type fileSchema struct {
	APIURL         string `yaml:"api_url" env:"LIFEDASH_API_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"LIFEDASH_TIMEOUT_SECONDS"`
	TokenPath      string `yaml:"token_path" env:"LIFEDASH_TOKEN_PATH"`
	Trace          bool   `yaml:"trace" env:"LIFEDASH_TRACE"`
}
