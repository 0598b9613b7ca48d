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

// Match contains bounds for date pattern matching.
type Match struct {
	YearMin int `toml:"year_min"`
	YearMax int `toml:"year_max"`
}

// Extract contains configuration for the filename date extraction cascade.
type Extract struct {
	ImageExtensions []string `toml:"image_extensions"`
	ModTimeFallback bool     `toml:"modtime_fallback"`
}

// Estimate contains configuration for directory date estimation.
type Estimate struct {
	Quantiles    []float64 `toml:"quantiles"`
	MinRangeDays int       `toml:"min_range_days"`
	FilePatterns []string  `toml:"file_patterns"`
	Recursive    bool      `toml:"recursive"`
}

// Organize contains configuration for grouping files into date directories.
type Organize struct {
	MinGroupFiles int    `toml:"min_group_files"`
	DirPrefix     string `toml:"dir_prefix"`
	DirSuffix     string `toml:"dir_suffix"`
	MergeAdjacent bool   `toml:"merge_adjacent"`
}

// Rename contains configuration for the date-prefix renamer.
type Rename struct {
	Separator string `toml:"separator"`
	Command   string `toml:"command"`
}

// Annotate contains configuration for ImageMagick annotation commands.
type Annotate struct {
	Gravity             string `toml:"gravity"`
	Fill                string `toml:"fill"`
	TextDivisor         int    `toml:"text_divisor"`
	Resize              bool   `toml:"resize"`
	ResizeMaxDimension  int    `toml:"resize_max_dimension"`
	ResizeMaxFileSizeKB int    `toml:"resize_max_filesize_kb"`
	ResizeTargetDim     int    `toml:"resize_target_dimension"`
	ResizeQuality       int    `toml:"resize_quality"`
}

// Dedupe contains configuration for duplicate detection.
type Dedupe struct {
	Command     string `toml:"command"`
	SampleBytes int    `toml:"sample_bytes"`
}

// Cache contains configuration for the optional extraction result cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output. Logs always go to stderr
// (stdout carries generated shell commands); Path adds an optional file copy.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Path   string `toml:"path"`
}

// Config encapsulates all configuration values for photodate.
type Config struct {
	Match    Match    `toml:"match"`
	Extract  Extract  `toml:"extract"`
	Estimate Estimate `toml:"estimate"`
	Organize Organize `toml:"organize"`
	Rename   Rename   `toml:"rename"`
	Annotate Annotate `toml:"annotate"`
	Dedupe   Dedupe   `toml:"dedupe"`
	Cache    Cache    `toml:"cache"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/photodate/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The bool result reports
// whether a file was actually found.
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

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
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
		_, err = os.Stat(expanded)
		if err != nil {
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

	projectPath, err := filepath.Abs("photodate.toml")
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
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
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
