package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/dignitasium/Space-Hub/internal/core"
)

// SaveScreenshot writes the front buffer as a BMP into dir and returns the
// file path. The name is prefixed with tag, usually the mode ID.
func SaveScreenshot(dir, tag string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.bmp", tag, at.Format("20060102_150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	if err := bmp.Encode(f, s.Image()); err != nil {
		f.Close()
		return "", fmt.Errorf("tui: screenshot encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}
