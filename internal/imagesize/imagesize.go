// Package imagesize probes image dimensions without decoding pixels.
package imagesize

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Size holds image dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Max returns the larger dimension.
func (s Size) Max() int {
	return max(s.Width, s.Height)
}

// Probe reads just enough of the file to learn its dimensions. Files that
// are not images in a registered format fail with an error the caller
// treats as "skip this file".
func Probe(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}
