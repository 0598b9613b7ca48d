package datecache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photodate/internal/extract"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "extract.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	want := extract.Result{Date: "2023-06-15", Remainder: "final.png", Source: extract.SourcePrefix}
	if err := store.Save("/pics/a.png", 100, 1700000000, true, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := store.Lookup("/pics/a.png", 100, 1700000000, true)
	if !ok || got != want {
		t.Errorf("Lookup = %v, %v; want %v, true", got, ok, want)
	}

	if _, ok := store.Lookup("/pics/a.png", 100, 1700000001, true); ok {
		t.Error("Lookup hit with a different mtime, want miss")
	}
	if _, ok := store.Lookup("/pics/a.png", 100, 1700000000, false); ok {
		t.Error("Lookup hit with a different fallback flag, want miss")
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "extract.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	first := extract.Result{Date: "2023-01-01", Source: extract.SourcePattern}
	second := extract.Result{Date: "2023-02-02", Remainder: "x", Source: extract.SourceMetadata}
	if err := store.Save("/a", 1, 2, false, first); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("/a", 1, 2, false, second); err != nil {
		t.Fatal(err)
	}

	got, ok := store.Lookup("/a", 1, 2, false)
	if !ok || got != second {
		t.Errorf("Lookup = %v, %v; want the second save", got, ok)
	}
}

func TestOpenSecondInstanceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extract.db")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := Open(path, nil); !errors.Is(err, ErrLocked) {
		t.Fatalf("second Open err = %v, want ErrLocked", err)
	}
}

func TestOpenReleasesLockOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extract.db")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen after Close: %v", err)
	}
	store.Close()
}

type countingProvider struct {
	calls  int
	result extract.Result
}

func (c *countingProvider) Extract(string, bool) extract.Result {
	c.calls++
	return c.result
}

func TestWrapCachesByStatKey(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "2024-01-02 trip.jpg")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := Open(filepath.Join(dir, "extract.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	inner := &countingProvider{result: extract.Result{Date: "2024-01-02", Remainder: "trip.jpg", Source: extract.SourceLiteral}}
	provider := Wrap(inner, store, nil)

	first := provider.Extract(file, true)
	second := provider.Extract(file, true)
	if first != second {
		t.Errorf("cached result %v differs from original %v", second, first)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}

	// A touched file misses the cache and is extracted again.
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(file, later, later); err != nil {
		t.Fatal(err)
	}
	provider.Extract(file, true)
	if inner.calls != 2 {
		t.Errorf("inner calls after touch = %d, want 2", inner.calls)
	}
}

func TestWrapNilStorePassesThrough(t *testing.T) {
	inner := &countingProvider{result: extract.Result{Source: extract.SourceNone}}
	if got := Wrap(inner, nil, nil); got != extract.Provider(inner) {
		t.Error("Wrap(nil store) should return the inner provider")
	}
}

func TestWrapMissingFileBypassesCache(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "extract.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	inner := &countingProvider{result: extract.Result{Source: extract.SourceNone}}
	provider := Wrap(inner, store, nil)
	provider.Extract("/does/not/exist.jpg", true)
	provider.Extract("/does/not/exist.jpg", true)
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want bypass on every call", inner.calls)
	}
}
