package dedupe

import (
	"bytes"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"photodate/internal/logging"
)

// StatCache memoizes stat results for one detector run. It is never shared
// across runs and never invalidated.
type StatCache struct {
	stats map[string]*unix.Stat_t
}

// NewStatCache builds an empty per-run cache.
func NewStatCache() *StatCache {
	return &StatCache{stats: make(map[string]*unix.Stat_t)}
}

// Stat returns the cached stat for path, populating the cache on first use.
func (c *StatCache) Stat(path string) (*unix.Stat_t, error) {
	if st, ok := c.stats[path]; ok {
		return st, nil
	}
	st := new(unix.Stat_t)
	if err := unix.Stat(path, st); err != nil {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	c.stats[path] = st
	return st, nil
}

// Pair is one detected duplicate: Keep stays, Remove is the candidate for
// the removal command.
type Pair struct {
	Keep   string
	Remove string
}

// Detector compares file sets for duplicates.
type Detector struct {
	cache  *StatCache
	sample int64
	logger *slog.Logger
}

// New builds a detector sampling sampleBytes per window. A nil logger
// disables diagnostics.
func New(sampleBytes int, logger *slog.Logger) *Detector {
	if sampleBytes <= 0 {
		sampleBytes = 1024
	}
	return &Detector{
		cache:  NewStatCache(),
		sample: int64(sampleBytes),
		logger: logging.NewComponentLogger(logger, "dedupe"),
	}
}

// Detect compares every left file against every right file and returns the
// duplicate pairs. A nil right set means comparing left against itself.
// Unreadable files are logged and treated as unequal; one bad file never
// aborts the run.
func (d *Detector) Detect(left, right []string) []Pair {
	if right == nil {
		right = left
	}

	type key struct{ a, b string }
	considered := make(map[key]struct{})

	var pairs []Pair
	for i, f1 := range left {
		if i > 0 && i%100 == 0 {
			d.logger.Debug("comparison progress",
				logging.Int("done", i), logging.Int("total", len(left)))
		}
		for _, f2 := range right {
			if f1 == f2 {
				continue
			}
			if _, ok := considered[key{f1, f2}]; ok {
				continue
			}
			considered[key{f1, f2}] = struct{}{}
			considered[key{f2, f1}] = struct{}{}

			equal, err := d.equal(f1, f2)
			if err != nil {
				d.logger.Warn("comparison failed",
					logging.String(logging.FieldPath, f1),
					logging.String("other", f2),
					logging.Error(err))
				continue
			}
			if equal {
				pairs = append(pairs, orderPair(f1, f2))
			}
		}
	}
	return pairs
}

// equal applies the sampled-equality test. Hardlinks to the same inode are
// equal without any reads.
func (d *Detector) equal(f1, f2 string) (bool, error) {
	st1, err := d.cache.Stat(f1)
	if err != nil {
		return false, err
	}
	st2, err := d.cache.Stat(f2)
	if err != nil {
		return false, err
	}
	if isDir(st1) || isDir(st2) {
		return false, nil
	}
	if st1.Size != st2.Size {
		return false, nil
	}
	if st1.Dev == st2.Dev && st1.Ino == st2.Ino {
		return true, nil
	}
	return d.sampledEqual(f1, f2, st1.Size)
}

func (d *Detector) sampledEqual(f1, f2 string, size int64) (bool, error) {
	h1, err := os.Open(f1)
	if err != nil {
		return false, err
	}
	defer h1.Close()
	h2, err := os.Open(f2)
	if err != nil {
		return false, err
	}
	defer h2.Close()

	mid := size / 2
	windows := []struct{ off, n int64 }{
		{0, min(d.sample, size)},
		{mid, min(d.sample, size-mid)},
		{max(0, size-d.sample), min(d.sample, size)},
	}
	for _, w := range windows {
		same, err := windowEqual(h1, h2, w.off, w.n)
		if err != nil {
			return false, err
		}
		if !same {
			return false, nil
		}
	}
	return true, nil
}

func windowEqual(h1, h2 *os.File, off, n int64) (bool, error) {
	if n <= 0 {
		return true, nil
	}
	b1 := make([]byte, n)
	b2 := make([]byte, n)
	if _, err := h1.ReadAt(b1, off); err != nil {
		return false, err
	}
	if _, err := h2.ReadAt(b2, off); err != nil {
		return false, err
	}
	return bytes.Equal(b1, b2), nil
}

// orderPair keeps the shorter-named file. Equal lengths fall back to
// lexicographic order so the outcome is deterministic.
func orderPair(f1, f2 string) Pair {
	if len(f1) < len(f2) || (len(f1) == len(f2) && f1 < f2) {
		return Pair{Keep: f1, Remove: f2}
	}
	return Pair{Keep: f2, Remove: f1}
}

func isDir(st *unix.Stat_t) bool {
	return st.Mode&unix.S_IFMT == unix.S_IFDIR
}
