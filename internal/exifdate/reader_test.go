package exifdate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureTimeMissingFile(t *testing.T) {
	r := New(nil)
	if _, ok := r.CaptureTime(filepath.Join(t.TempDir(), "missing.jpg")); ok {
		t.Fatal("expected absence for a missing file")
	}
}

func TestCaptureTimeNotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.jpg")
	if err := os.WriteFile(path, []byte("plain text, not an image"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r := New(nil)
	if _, ok := r.CaptureTime(path); ok {
		t.Fatal("expected absence for a non-image file")
	}
}
