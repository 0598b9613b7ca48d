package datecache

import (
	"log/slog"
	"os"

	"photodate/internal/extract"
	"photodate/internal/logging"
)

// Provider caches another provider's extraction results.
type Provider struct {
	inner  extract.Provider
	store  *Store
	logger *slog.Logger
}

// Wrap layers the cache over inner. A nil store disables caching entirely
// and returns inner unchanged.
func Wrap(inner extract.Provider, store *Store, logger *slog.Logger) extract.Provider {
	if store == nil {
		return inner
	}
	return &Provider{
		inner:  inner,
		store:  store,
		logger: logging.NewComponentLogger(logger, "datecache"),
	}
}

// Extract consults the cache before delegating. Paths that cannot be stat'd
// bypass the cache since there is no stable key for them.
func (p *Provider) Extract(path string, modTimeFallback bool) extract.Result {
	info, err := os.Stat(path)
	if err != nil {
		return p.inner.Extract(path, modTimeFallback)
	}
	size := info.Size()
	mtime := info.ModTime().Unix()

	if res, ok := p.store.Lookup(path, size, mtime, modTimeFallback); ok {
		return res
	}

	res := p.inner.Extract(path, modTimeFallback)
	if err := p.store.Save(path, size, mtime, modTimeFallback, res); err != nil {
		p.logger.Warn("result not cached",
			logging.String(logging.FieldPath, path), logging.Error(err))
	}
	return res
}
