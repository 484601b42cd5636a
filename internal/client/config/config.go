package config

import "time"

// Config holds runtime settings for the HeartTrack CLI.
//
// Fields:
//   - ServerURL: base URL of the HeartTrack server.
//   - RequestTimeout: per-request HTTP timeout.
//   - ExportDir: directory (relative to the working directory unless
//     absolute) where exported and archived CSV files are written.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	ExportDir      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.ExportDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
