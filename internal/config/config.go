package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output locations.
type Paths struct {
	// Dataset is the sample collection to build from: a .json/.jsonl file,
	// optionally gzip-compressed.
	Dataset string `toml:"dataset"`
	// QualityCSV is the solver quality report joined for confidence scores.
	// Empty disables confidence annotation.
	QualityCSV string `toml:"quality_csv"`
	ImagesDir  string `toml:"images_dir"`
	PlotsDir   string `toml:"plots_dir"`
	BallsDir   string `toml:"balls_dir"`
	OutDir     string `toml:"out_dir"`
	LogDir     string `toml:"log_dir"`
}

// Site controls viewer-page generation.
type Site struct {
	Title       string `toml:"title"`
	ImgPrefix   string `toml:"img_prefix"`
	PlotsPrefix string `toml:"plots_prefix"`
	BallsPrefix string `toml:"balls_prefix"`
}

// Confidence controls the quality-report scoring ramp.
type Confidence struct {
	// GoodMAE and BadMAE bound the angular-error ramp in degrees. BadMAE at
	// or below GoodMAE degrades to a hard threshold at GoodMAE.
	GoodMAE float64 `toml:"good_mae_deg"`
	BadMAE  float64 `toml:"bad_mae_deg"`
	// ExposureTag restricts quality rows to one exposure condition. Empty
	// derives the tag from the dataset filename.
	ExposureTag string `toml:"exposure_tag"`
}

// Pipeline controls dataset processing.
type Pipeline struct {
	// Normalize scales direction vectors to unit length. When false, raw
	// components pass through and only the magnitude is recorded.
	Normalize bool `toml:"normalize"`
}

// History controls the per-run build history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains log output configuration.
type Logging struct {
	// Format is "console" or "json"; empty picks console on a terminal and
	// json otherwise.
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for lumen.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Site       Site       `toml:"site"`
	Confidence Confidence `toml:"confidence"`
	Pipeline   Pipeline   `toml:"pipeline"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/lumen/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file. The
// returned resolved path and exists flag describe which file was used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("lumen.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryDBPath returns the build-history database location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.LogDir, "lumen-runs.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
