package quora

import "quoraprofiler-backend/lib/configutil"

const (
	DefaultHost = "quora-scraper.p.rapidapi.com"
	// placeholder credential, real deployments set QUORA_API_KEY
	defaultKey = "xxxx"
)

// Config holds the upstream host and credential. It is read once at
// startup and passed down, the package never consults the environment
// after construction.
type Config struct {
	Host string `json:"host"`
	Key  string `json:"key"`
}

// fills unset fields from QUORA_API_HOST / QUORA_API_KEY,
// falling back to the built-in defaults.
func (c Config) WithEnvDefaults() Config {
	if c.Host == "" {
		c.Host = configutil.Env("QUORA_API_HOST", DefaultHost)
	}
	if c.Key == "" {
		c.Key = configutil.Env("QUORA_API_KEY", defaultKey)
	}
	return c
}

func ConfigFromEnv() Config {
	return Config{}.WithEnvDefaults()
}
