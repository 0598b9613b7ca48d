package imagesize

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestProbePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 320, 200))); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	size, err := Probe(path)
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if size.Width != 320 || size.Height != 200 {
		t.Errorf("size = %+v, want 320x200", size)
	}
	if size.Max() != 320 {
		t.Errorf("Max = %d, want 320", size.Max())
	}
}

func TestProbeNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Probe(path); err == nil {
		t.Fatal("Probe succeeded on a text file, want error")
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Fatal("Probe succeeded on a missing file, want error")
	}
}
