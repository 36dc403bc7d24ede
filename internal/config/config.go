// Package config resolves client settings from environment variables with
// development defaults; flags on the CLI override it.
package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL points at a local backend; deployments set DOEBEM_API_URL.
const DefaultBaseURL = "http://localhost:8080/api"

// Config is everything the client needs before the first request.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	Verbose    bool
}

// FromEnv reads DOEBEM_API_URL, DOEBEM_TIMEOUT and DOEBEM_VERBOSE. Values
// that fail to parse fall back to the defaults rather than aborting.
func FromEnv() Config {
	cfg := Config{
		APIBaseURL: DefaultBaseURL,
		Timeout:    10 * time.Second,
	}
	if v := os.Getenv("DOEBEM_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DOEBEM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("DOEBEM_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	return cfg
}

// Logger builds the process logger: quiet production output by default,
// debug-level console output when verbose.
func (c Config) Logger() *zap.Logger {
	if c.Verbose {
		l, _ := zap.NewDevelopment()
		return l
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, _ := zc.Build()
	return l
}
