package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"photodate/internal/config"
	"photodate/internal/datecache"
	"photodate/internal/dateparse"
	"photodate/internal/exifdate"
	"photodate/internal/extract"
	"photodate/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	providerOnce sync.Once
	provider     extract.Provider
	cacheStore   *datecache.Store
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared logger. Logs go to stderr (and the
// configured file, if any); stdout stays reserved for shell commands. A
// per-run ID ties together the log lines of one invocation.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}

		outputs := []string{"stderr"}
		if cfg.Logging.Path != "" {
			outputs = append(outputs, cfg.Logging.Path)
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: outputs,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))
	})
	return c.logger
}

// ensureProvider assembles the extraction pipeline: EXIF reader, filename
// extractor, and the optional persistent cache. A cache that fails to open
// only costs speed, so the failure is logged and extraction proceeds
// uncached.
func (c *commandContext) ensureProvider() (extract.Provider, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.providerOnce.Do(func() {
		logger := c.ensureLogger()
		provider := extract.New(cfg, exifdate.New(logger), logger)
		c.provider = provider

		if !cfg.Cache.Enabled {
			return
		}
		store, err := datecache.Open(cfg.Cache.Path, logger)
		if err != nil {
			logger.Warn("extraction cache unavailable",
				logging.String(logging.FieldPath, cfg.Cache.Path),
				logging.Error(err))
			return
		}
		c.cacheStore = store
		c.provider = datecache.Wrap(provider, store, logger)
	})
	return c.provider, nil
}

func (c *commandContext) close() {
	if c.cacheStore != nil {
		_ = c.cacheStore.Close()
		c.cacheStore = nil
	}
}

func (c *commandContext) bounds() dateparse.Bounds {
	cfg, err := c.ensureConfig()
	if err != nil {
		return dateparse.Strict
	}
	return dateparse.Bounds{MinYear: cfg.Match.YearMin, MaxYear: cfg.Match.YearMax}
}
