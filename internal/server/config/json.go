package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hearttrack/internal/flagx"
	"github.com/dmitrijs2005/hearttrack/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// "30m" style strings or integer nanoseconds. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type JsonConfig struct {
	ListenAddr           *string         `json:"listen_addr"`
	SecretKey            *string         `json:"secret_key"`
	SessionTTL           *timex.Duration `json:"session_ttl"`
	PasswordMode         *string         `json:"password_mode"`
	AdminEmail           *string         `json:"admin_email"`
	AdminPassword        *string         `json:"admin_password"`
	DefaultHighThreshold *int            `json:"default_high_threshold"`
	DefaultLowThreshold  *int            `json:"default_low_threshold"`
	LogLevel             *string         `json:"log_level"`
	S3Enabled            *bool           `json:"s3_enabled"`
	S3RootUser           *string         `json:"s3_root_user"`
	S3RootPassword       *string         `json:"s3_root_password"`
	S3Bucket             *string         `json:"s3_bucket"`
	S3Region             *string         `json:"s3_region"`
	S3BaseEndpoint       *string         `json:"s3_base_endpoint"`
	ArchiveURLValidity   *timex.Duration `json:"archive_url_validity"`
}

// parseJson overlays the JSON file named by -c/-config, if any. A file that
// cannot be read or decoded panics: a misconfigured server should not start.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.ListenAddr, c.ListenAddr)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.PasswordMode, c.PasswordMode)
	overlay(&config.AdminEmail, c.AdminEmail)
	overlay(&config.AdminPassword, c.AdminPassword)
	overlay(&config.DefaultHighThreshold, c.DefaultHighThreshold)
	overlay(&config.DefaultLowThreshold, c.DefaultLowThreshold)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.S3Enabled, c.S3Enabled)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.ArchiveURLValidity != nil {
		config.ArchiveURLValidity = c.ArchiveURLValidity.Duration
	}
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
