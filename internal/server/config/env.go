package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded if present. Variables already set in the process
// environment win over the file.
var envFile = ".env"

// parseEnv overlays HEARTTRACK_* environment variables. Unparseable numeric
// or boolean values are ignored and the previous value is kept.
func parseEnv(config *Config) {
	_ = godotenv.Load(envFile)

	setString(&config.ListenAddr, "HEARTTRACK_ADDR")
	setString(&config.SecretKey, "HEARTTRACK_SECRET_KEY")
	setMinutes(&config.SessionTTL, "HEARTTRACK_SESSION_TTL")
	setString(&config.PasswordMode, "HEARTTRACK_PASSWORD_MODE")
	setString(&config.AdminEmail, "HEARTTRACK_ADMIN_EMAIL")
	setString(&config.AdminPassword, "HEARTTRACK_ADMIN_PASSWORD")
	setInt(&config.DefaultHighThreshold, "HEARTTRACK_HIGH_THRESHOLD")
	setInt(&config.DefaultLowThreshold, "HEARTTRACK_LOW_THRESHOLD")
	setString(&config.LogLevel, "HEARTTRACK_LOG_LEVEL")
	setBool(&config.S3Enabled, "HEARTTRACK_S3_ENABLED")
	setString(&config.S3RootUser, "HEARTTRACK_S3_ROOT_USER")
	setString(&config.S3RootPassword, "HEARTTRACK_S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "HEARTTRACK_S3_BUCKET")
	setString(&config.S3Region, "HEARTTRACK_S3_REGION")
	setString(&config.S3BaseEndpoint, "HEARTTRACK_S3_BASE_ENDPOINT")
	setMinutes(&config.ArchiveURLValidity, "HEARTTRACK_ARCHIVE_URL_VALIDITY")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// setMinutes accepts either a Go duration ("45m") or a bare number of minutes.
func setMinutes(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Minute
	}
}
