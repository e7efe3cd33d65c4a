package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/dignitasium/Space-Hub/internal/core"
)

func TestSaveScreenshot(t *testing.T) {
	s := core.NewScreen(core.LCDWidth, core.LCDHeight)
	s.DrawRect(10, 10, 4, 4, core.FillBlack)
	s.Present()

	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	path, err := SaveScreenshot(dir, "invade", s, at)
	if err != nil {
		t.Fatalf("SaveScreenshot() error = %v", err)
	}
	if want := filepath.Join(dir, "invade_20260102_030405.bmp"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != core.LCDWidth || b.Dy() != core.LCDHeight {
		t.Fatalf("bounds = %v, want %dx%d", b, core.LCDWidth, core.LCDHeight)
	}

	ink, _, _, _ := img.At(11, 11).RGBA()
	light, _, _, _ := img.At(0, 0).RGBA()
	if ink>>8 != 0x1e || light>>8 != 0xc7 {
		t.Errorf("red channels = %#x/%#x, want ink 0x1e, backlight 0xc7", ink>>8, light>>8)
	}
}

func TestSaveScreenshotBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(core.LCDWidth, core.LCDHeight)
	if _, err := SaveScreenshot(filepath.Join(file, "sub"), "menu", s, time.Now()); err == nil {
		t.Error("SaveScreenshot() under a file: want error")
	}
}
