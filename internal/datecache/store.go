package datecache

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"photodate/internal/extract"
	"photodate/internal/logging"
)

// ErrLocked reports that another run holds the cache database.
var ErrLocked = errors.New("cache is locked by another run")

const schema = `
CREATE TABLE IF NOT EXISTS extract_results (
    path      TEXT    NOT NULL,
    size      INTEGER NOT NULL,
    mtime     INTEGER NOT NULL,
    fallback  INTEGER NOT NULL,
    date      TEXT    NOT NULL,
    remainder TEXT    NOT NULL,
    source    TEXT    NOT NULL,
    PRIMARY KEY (path, size, mtime, fallback)
)`

// Store is a SQLite-backed cache of extraction results.
type Store struct {
	db     *sql.DB
	lock   *flock.Flock
	path   string
	logger *slog.Logger
}

// Open connects to the cache database at path, creating it and its parent
// directory as needed. The store holds an exclusive file lock until Close;
// a second concurrent open fails with ErrLocked.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("open cache %s: %w", path, ErrLocked)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &Store{
		db:     db,
		lock:   lock,
		path:   path,
		logger: logging.NewComponentLogger(logger, "datecache"),
	}, nil
}

// Close releases the database and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	err := s.db.Close()
	if unlockErr := s.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}

// Lookup fetches a cached result for the exact (path, size, mtime, fallback)
// key.
func (s *Store) Lookup(path string, size, mtime int64, fallback bool) (extract.Result, bool) {
	var res extract.Result
	var source string
	err := s.db.QueryRow(
		`SELECT date, remainder, source FROM extract_results
         WHERE path = ? AND size = ? AND mtime = ? AND fallback = ?`,
		path, size, mtime, boolInt(fallback),
	).Scan(&res.Date, &res.Remainder, &source)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("cache lookup failed",
				logging.String(logging.FieldPath, path), logging.Error(err))
		}
		return extract.Result{}, false
	}
	res.Source = extract.Source(source)
	return res, true
}

// Save upserts a result under its key.
func (s *Store) Save(path string, size, mtime int64, fallback bool, res extract.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO extract_results (path, size, mtime, fallback, date, remainder, source)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (path, size, mtime, fallback) DO UPDATE
         SET date = excluded.date, remainder = excluded.remainder, source = excluded.source`,
		path, size, mtime, boolInt(fallback), res.Date, res.Remainder, string(res.Source),
	)
	if err != nil {
		return fmt.Errorf("save cache entry for %s: %w", path, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
