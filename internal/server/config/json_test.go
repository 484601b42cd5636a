package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"listen_addr":            "127.0.0.1:9000",
		"secret_key":             "my_secret_key",
		"session_ttl":            "1h",
		"password_mode":          "argon2",
		"admin_email":            "boss@clinic.test",
		"admin_password":         "hunter2",
		"default_high_threshold": 110,
		"default_low_threshold":  50,
		"log_level":              "warn",
		"s3_enabled":             true,
		"s3_root_user":           "user",
		"s3_root_password":       "password",
		"s3_bucket":              "bucket",
		"s3_region":              "region",
		"s3_base_endpoint":       "base_endpoint",
		"archive_url_validity":   "5m",
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, Config{
			ListenAddr:           "127.0.0.1:9000",
			SecretKey:            "my_secret_key",
			SessionTTL:           time.Hour,
			PasswordMode:         "argon2",
			AdminEmail:           "boss@clinic.test",
			AdminPassword:        "hunter2",
			DefaultHighThreshold: 110,
			DefaultLowThreshold:  50,
			LogLevel:             "warn",
			S3Enabled:            true,
			S3RootUser:           "user",
			S3RootPassword:       "password",
			S3Bucket:             "bucket",
			S3Region:             "region",
			S3BaseEndpoint:       "base_endpoint",
			ArchiveURLValidity:   5 * time.Minute,
		}, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := defaultConfig()
		parseJson(cfg)

		want := defaultConfig()
		want.LogLevel = "debug"
		assert.Equal(t, want, cfg)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := defaultConfig()
		parseJson(cfg)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
