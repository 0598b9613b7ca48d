package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatch(); err != nil {
		return err
	}
	if err := c.validateEstimate(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateAnnotate(); err != nil {
		return err
	}
	if err := c.validateDedupe(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatch() error {
	if c.Match.YearMin < 1000 || c.Match.YearMax > 9999 {
		return errors.New("match.year_min and match.year_max must be four-digit years")
	}
	if c.Match.YearMin >= c.Match.YearMax {
		return fmt.Errorf("match.year_min (%d) must be below match.year_max (%d)", c.Match.YearMin, c.Match.YearMax)
	}
	return nil
}

func (c *Config) validateEstimate() error {
	if len(c.Estimate.Quantiles) < 1 {
		return errors.New("estimate.quantiles must contain at least one value")
	}
	for _, q := range c.Estimate.Quantiles {
		if q < 0 || q > 1 {
			return fmt.Errorf("estimate.quantiles: %v is outside [0, 1]", q)
		}
	}
	if c.Estimate.MinRangeDays < 0 {
		return errors.New("estimate.min_range_days must not be negative")
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.MinGroupFiles < 1 {
		return errors.New("organize.min_group_files must be at least 1")
	}
	return nil
}

func (c *Config) validateAnnotate() error {
	if c.Annotate.TextDivisor < 1 {
		return errors.New("annotate.text_divisor must be at least 1")
	}
	if c.Annotate.ResizeQuality < 1 || c.Annotate.ResizeQuality > 100 {
		return errors.New("annotate.resize_quality must be between 1 and 100")
	}
	if c.Annotate.ResizeMaxDimension < 1 || c.Annotate.ResizeTargetDim < 1 {
		return errors.New("annotate resize dimensions must be positive")
	}
	return nil
}

func (c *Config) validateDedupe() error {
	if c.Dedupe.SampleBytes < 1 {
		return errors.New("dedupe.sample_bytes must be at least 1")
	}
	return nil
}
