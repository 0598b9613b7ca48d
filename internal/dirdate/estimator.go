package dirdate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"photodate/internal/extract"
	"photodate/internal/logging"
	"photodate/internal/pathmatch"
	"photodate/internal/textutil"
)

// ErrEmptySample reports a directory containing no datable files.
var ErrEmptySample = errors.New("no dated files in directory")

const dateLayout = "2006-01-02"

// nameRange matches an explicit "YYYY-MM-DD - YYYY-MM-DD" range at the start
// of a directory name. A single literal date is handled by the extraction
// cascade itself.
var nameRange = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}) - (\d{4}-\d{2}-\d{2})`)

// Options control sampling and labeling.
type Options struct {
	Quantiles    []float64
	MinRangeDays int
	FilePatterns []string
	Recursive    bool
}

// Estimate is the result of dating one directory. Quantiles is populated only
// when the file sample was actually consulted.
type Estimate struct {
	Label     string
	CleanName string
	Quantiles map[float64]string
}

// Estimator dates directories using a date extraction provider.
type Estimator struct {
	provider extract.Provider
	logger   *slog.Logger
}

// New builds an estimator. A nil logger disables diagnostics.
func New(provider extract.Provider, logger *slog.Logger) *Estimator {
	return &Estimator{
		provider: provider,
		logger:   logging.NewComponentLogger(logger, "dirdate"),
	}
}

// Estimate labels dir with a date or date range.
//
// The directory's own base name wins when it carries at least year-month
// precision; the modification-time fallback stays off for that probe since a
// directory's mtime says nothing about its contents. Otherwise the matched
// files inside provide a date sample reduced to quantiles.
func (e *Estimator) Estimate(dir string, opts Options) (Estimate, error) {
	base := textutil.NormalizeName(filepath.Base(filepath.Clean(dir)))

	if m := nameRange.FindStringSubmatch(base); m != nil {
		if validLiteral(m[1]) && validLiteral(m[2]) {
			clean := textutil.TrimSeparators(base[len(m[0]):])
			return Estimate{Label: m[0], CleanName: clean}, nil
		}
	}

	nameRes := e.provider.Extract(dir, false)
	clean := textutil.TrimSeparators(nameRes.Remainder)
	if len(nameRes.Date) >= 7 {
		return Estimate{Label: nameRes.Date, CleanName: clean}, nil
	}

	sample, err := e.collectDates(dir, opts)
	if err != nil {
		return Estimate{}, err
	}
	if len(sample) == 0 {
		return Estimate{}, fmt.Errorf("estimate %s: %w", dir, ErrEmptySample)
	}
	sort.Slice(sample, func(i, j int) bool { return sample[i].Before(sample[j]) })

	quantiles := append([]float64{}, opts.Quantiles...)
	if len(quantiles) == 0 {
		quantiles = []float64{0.05, 0.5, 0.95}
	}
	sort.Float64s(quantiles)

	values := make(map[float64]string, len(quantiles))
	for _, q := range quantiles {
		values[q] = formatDay(atRank(sample, q))
	}

	return Estimate{
		Label:     rangeLabel(quantiles, values, opts.MinRangeDays),
		CleanName: clean,
		Quantiles: values,
	}, nil
}

func (e *Estimator) collectDates(dir string, opts Options) ([]time.Time, error) {
	files, err := pathmatch.FilesMatching(dir, opts.FilePatterns, opts.Recursive)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var sample []time.Time
	for _, path := range files {
		res := e.provider.Extract(path, true)
		if res.Date == "" {
			continue
		}
		t, err := time.ParseInLocation(dateLayout, res.Date, time.Local)
		if err != nil {
			// Partial dates (year or year-month) carry too little
			// precision for the sample.
			e.logger.Debug("skipping partial date",
				logging.String(logging.FieldPath, path),
				logging.String("date", res.Date))
			continue
		}
		sample = append(sample, t)
	}
	return sample, nil
}

// rangeLabel applies the labeling policy: coinciding extremes collapse to the
// middle quantile, short spans collapse to the low quantile, everything else
// becomes a "low - high" range.
func rangeLabel(quantiles []float64, values map[float64]string, minRangeDays int) string {
	low := values[quantiles[0]]
	high := values[quantiles[len(quantiles)-1]]
	if low == high {
		return values[quantiles[len(quantiles)/2]]
	}

	lowT, _ := time.ParseInLocation(dateLayout, low, time.Local)
	highT, _ := time.ParseInLocation(dateLayout, high, time.Local)
	spanDays := int(highT.Sub(lowT).Hours() / 24)
	if spanDays < minRangeDays {
		return low
	}
	return low + " - " + high
}

// atRank computes the quantile at fractional rank q*(n-1) by linear
// interpolation between the bracketing order statistics.
func atRank(sorted []time.Time, q float64) time.Time {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lower := int(pos)
	if lower >= n-1 {
		return sorted[n-1]
	}
	weight := pos - float64(lower)
	if weight == 0 {
		return sorted[lower]
	}
	lowerTS := float64(sorted[lower].Unix())
	upperTS := float64(sorted[lower+1].Unix())
	return time.Unix(int64(lowerTS+weight*(upperTS-lowerTS)), 0)
}

// formatDay rounds an interpolated timestamp to the nearest calendar day, so
// a quantile landing late in a day labels that day's successor rather than
// truncating backwards.
func formatDay(t time.Time) string {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	if t.Sub(midnight) >= 12*time.Hour {
		midnight = midnight.AddDate(0, 0, 1)
	}
	return midnight.Format(dateLayout)
}

func validLiteral(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
