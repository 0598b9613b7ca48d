package config

import (
	"fmt"
	"sort"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeExtract()
	c.normalizeEstimate()
	c.normalizeRename()
	c.normalizeLogging()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeExtract() {
	if len(c.Extract.ImageExtensions) == 0 {
		c.Extract.ImageExtensions = defaultImageExtensions()
	}
	normalized := make([]string, 0, len(c.Extract.ImageExtensions))
	for _, ext := range c.Extract.ImageExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	c.Extract.ImageExtensions = normalized
}

func (c *Config) normalizeEstimate() {
	if len(c.Estimate.Quantiles) == 0 {
		c.Estimate.Quantiles = defaultQuantiles()
	}
	sort.Float64s(c.Estimate.Quantiles)
	if len(c.Estimate.FilePatterns) == 0 {
		c.Estimate.FilePatterns = defaultFilePatterns()
	}
}

func (c *Config) normalizeRename() {
	if c.Rename.Separator == "" {
		c.Rename.Separator = defaultRenameSeparator
	}
	c.Rename.Command = strings.TrimSpace(c.Rename.Command)
	if c.Rename.Command == "" {
		c.Rename.Command = defaultMoveCommand
	}
	c.Dedupe.Command = strings.TrimSpace(c.Dedupe.Command)
	if c.Dedupe.Command == "" {
		c.Dedupe.Command = defaultRemoveCommand
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeCache() error {
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	expanded, err := expandPath(c.Cache.Path)
	if err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	c.Cache.Path = expanded
	return nil
}
