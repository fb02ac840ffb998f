// Package timeouts provides centralized timeout values for handler
// operations. Probes and content reads get their budgets from here so the
// values live in one place instead of being scattered across handlers.
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultProbe   = 5 * time.Second
	DefaultRequest = 30 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	probe   = DefaultProbe
	request = DefaultRequest
)

// Probe returns the timeout for health and readiness checks.
func Probe() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return probe
}

// Request returns the overall per-request timeout applied at the router.
func Request() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return request
}

// Config holds timeout configuration values.
type Config struct {
	Probe   time.Duration
	Request time.Duration
}

// Configure sets custom timeout values. Zero fields keep their current
// value.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Probe > 0 {
		probe = cfg.Probe
	}
	if cfg.Request > 0 {
		request = cfg.Request
	}
}

// Reset restores all timeouts to defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	probe = DefaultProbe
	request = DefaultRequest
}

// ConfigureFromEnv reads timeout overrides from TIMEOUT_PROBE and
// TIMEOUT_REQUEST. Returns the number of values applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	if v := os.Getenv("TIMEOUT_PROBE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			probe = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_REQUEST"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			request = d
			configured++
		}
	}
	return configured
}

// WithProbe derives a context with the probe timeout.
func WithProbe(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Probe())
}
