// Package testsupport provides shared helpers for package tests: configs
// rooted in per-test temp directories and dataset fixture writers.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"lumen/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutDir = filepath.Join(base, "site")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithDataset sets the dataset path on the test config.
func WithDataset(path string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.Dataset = path
	}
}

// WriteFile writes a fixture file under dir and returns its path.
func WriteFile(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
