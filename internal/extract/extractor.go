package extract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"photodate/internal/config"
	"photodate/internal/dateparse"
	"photodate/internal/exifdate"
	"photodate/internal/logging"
	"photodate/internal/textutil"
)

// Source identifies which cascade stage produced a date.
type Source string

const (
	SourceNone     Source = "none"
	SourcePrefix   Source = "prefix"
	SourceLiteral  Source = "literal"
	SourcePattern  Source = "pattern"
	SourceMetadata Source = "metadata"
	SourceModTime  Source = "mtime"
)

// Result is the outcome of date inference for one path. Date is empty only
// when every stage failed; Remainder is the descriptive text left after the
// date (the full base name when the date did not come from the name itself).
type Result struct {
	Date      string
	Remainder string
	Source    Source
}

// Provider is the single-method view of extraction that batch callers and
// caching wrappers implement.
type Provider interface {
	Extract(path string, modTimeFallback bool) Result
}

// Extractor runs the strategy cascade.
type Extractor struct {
	reader     exifdate.Reader
	logger     *slog.Logger
	bounds     dateparse.Bounds
	imageExts  map[string]struct{}
	strategies []strategy
}

type strategy struct {
	name string
	run  func(*Extractor, string, string) (Result, bool)
}

// New builds an extractor from configuration. cfg may be nil; reader may be
// nil to disable the metadata stage; a nil logger disables diagnostics.
func New(cfg *config.Config, reader exifdate.Reader, logger *slog.Logger) *Extractor {
	bounds := dateparse.Strict
	exts := map[string]struct{}{}
	if cfg != nil {
		bounds = dateparse.Bounds{MinYear: cfg.Match.YearMin, MaxYear: cfg.Match.YearMax}
		for _, ext := range cfg.Extract.ImageExtensions {
			exts[ext] = struct{}{}
		}
	} else {
		for _, ext := range config.Default().Extract.ImageExtensions {
			exts[ext] = struct{}{}
		}
	}

	e := &Extractor{
		reader:    reader,
		logger:    logging.NewComponentLogger(logger, "extract"),
		bounds:    bounds,
		imageExts: exts,
	}
	e.strategies = []strategy{
		{name: "prefix", run: (*Extractor).fromKnownPrefix},
		{name: "literal", run: (*Extractor).fromLiteralHead},
		{name: "pattern", run: (*Extractor).fromPattern},
		{name: "metadata", run: (*Extractor).fromMetadata},
	}
	return e
}

// Extract runs the cascade over path. When modTimeFallback is true and no
// other stage produced a date, the file's modification time supplies one.
func (e *Extractor) Extract(path string, modTimeFallback bool) Result {
	base := textutil.NormalizeName(filepath.Base(path))

	for _, s := range e.strategies {
		if res, ok := s.run(e, path, base); ok {
			e.logger.Debug("date inferred",
				logging.String(logging.FieldPath, path),
				logging.String("stage", s.name),
				logging.String("date", res.Date))
			return res
		}
	}
	if modTimeFallback {
		if res, ok := e.fromModTime(path, base); ok {
			e.logger.Debug("date inferred",
				logging.String(logging.FieldPath, path),
				logging.String("stage", "mtime"),
				logging.String("date", res.Date))
			return res
		}
	}

	e.logger.Debug("no date found", logging.String(logging.FieldPath, path))
	return Result{Remainder: base, Source: SourceNone}
}

func (e *Extractor) isImage(base string) bool {
	ext := strings.ToLower(filepath.Ext(base))
	_, ok := e.imageExts[ext]
	return ok
}
