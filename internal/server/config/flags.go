package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/flagx"
)

// parseFlags overlays selected fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-s string   session cookie HMAC secret
//	-t int      session idle TTL, minutes
//	-m string   password mode: plain | argon2
//	-l string   log level
//	-H int      default high BPM threshold
//	-L int      default low BPM threshold
//	-S bool     enable S3 CSV archives
//
// Other arguments (for example -c) are filtered out with flagx.FilterArgs so
// they do not make this FlagSet fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-m", "-l", "-H", "-L", "-S"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session idle ttl (in minutes)")
	fs.StringVar(&config.PasswordMode, "m", config.PasswordMode, "password mode (plain|argon2)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.DefaultHighThreshold, "H", config.DefaultHighThreshold, "default high BPM threshold")
	fs.IntVar(&config.DefaultLowThreshold, "L", config.DefaultLowThreshold, "default low BPM threshold")
	fs.BoolVar(&config.S3Enabled, "S", config.S3Enabled, "enable S3 CSV archives")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
