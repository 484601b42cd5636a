// Package config handles configuration for the HeartTrack server: defaults,
// environment (optionally from a .env file), a JSON overlay and
// command-line flags, applied in that order.
package config

import (
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/common"
)

// Config holds runtime settings for the HeartTrack server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - SecretKey: HMAC secret for signing session cookies (HS256).
//   - SessionTTL: idle lifetime of a session; the cookie expires with it.
//   - PasswordMode: "plain" (stored as typed) or "argon2".
//   - AdminEmail / AdminPassword: account seeded into every new session.
//   - DefaultHighThreshold / DefaultLowThreshold: initial alert limits.
//   - LogLevel: debug, info, warn or error.
//   - S3*: optional object storage for CSV archives.
//   - ArchiveURLValidity: lifetime of presigned archive download URLs.
type Config struct {
	ListenAddr           string
	SecretKey            string
	SessionTTL           time.Duration
	PasswordMode         string
	AdminEmail           string
	AdminPassword        string
	DefaultHighThreshold int
	DefaultLowThreshold  int
	LogLevel             string
	S3Enabled            bool
	S3RootUser           string
	S3RootPassword       string
	S3Bucket             string
	S3Region             string
	S3BaseEndpoint       string
	ArchiveURLValidity   time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey and the admin password must be overridden outside a demo.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.SecretKey = "secretKey"
	c.SessionTTL = 30 * time.Minute
	c.PasswordMode = "plain"
	c.AdminEmail = "admin@hearttrack.com"
	c.AdminPassword = "admin123"
	c.DefaultHighThreshold = common.DefaultHighThreshold
	c.DefaultLowThreshold = common.DefaultLowThreshold
	c.LogLevel = "info"
	c.S3Enabled = false
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "hearttrack"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ArchiveURLValidity = 15 * time.Minute
}

// LoadConfig builds a Config from defaults, then the environment, then an
// optional JSON file, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
