// Package testsupport provides shared fixtures for package tests: temp-dir
// seeded configs, catalog stores, and sample movie records.
package testsupport

import (
	"path/filepath"
	"testing"

	"castmerge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTMDB enables the identity resolver against the supplied base URL.
func WithTMDB(apiKey, baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TMDB.Enabled = true
		cfg.TMDB.APIKey = apiKey
		cfg.TMDB.BaseURL = baseURL
	}
}

// WithMinConfidence overrides the merge candidate threshold.
func WithMinConfidence(value float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Detection.MinConfidence = value
	}
}
