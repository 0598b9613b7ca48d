// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"photodate/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated default config with the cache pointed at a
// unique temp directory per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Cache.Path = filepath.Join(t.TempDir(), "extract.db")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithYearBounds overrides the match year window.
func WithYearBounds(minYear, maxYear int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Match.YearMin = minYear
		cfg.Match.YearMax = maxYear
	}
}

// WithQuantiles overrides the estimate quantiles.
func WithQuantiles(quantiles ...float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Estimate.Quantiles = quantiles
	}
}

// WriteFile creates path with the given contents, creating parents as
// needed.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileModTime creates path and pins its modification time.
func WriteFileModTime(t testing.TB, path string, data []byte, mtime time.Time) {
	t.Helper()

	WriteFile(t, path, data)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("set mtime for %s: %v", path, err)
	}
}
