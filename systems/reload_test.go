package systems

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/fonts"
	"golang.org/x/image/font/gofont/goregular"
)

func TestReloadConfig(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(saved.Apply)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("petal:\n  gravity: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !ReloadConfig(good) {
		t.Fatal("expected valid config to reload")
	}
	if cfg.Petal.Gravity != 0.2 {
		t.Errorf("expected gravity 0.2, got %f", cfg.Petal.Gravity)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("petal:\n  drag: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if ReloadConfig(bad) {
		t.Fatal("expected invalid config to be rejected")
	}
	if cfg.Petal.Drag != saved.Petal.Drag {
		t.Errorf("invalid reload changed drag to %f", cfg.Petal.Drag)
	}
}

func TestReloadedPetalCountAppliesAtRegrowth(t *testing.T) {
	withPetalCount(t, 4)
	e := newTestECS(t)

	cfg.Flower.PetalCount = 6
	if got := len(flowerOf(e).Petals); got != 4 {
		t.Fatalf("expected the live flower to keep 4 petals, got %d", got)
	}

	InitFlower(e)
	if got := len(flowerOf(e).Petals); got != 6 {
		t.Errorf("expected 6 petals after regrowth, got %d", got)
	}
}

func TestReloadedFontSizeResizesFace(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(func() {
		saved.Apply()
		_ = fonts.Phrase.Resize(saved.Text.FontSize)
	})
	if err := fonts.LoadFontWithSize(fonts.Phrase, goregular.TTF, cfg.Text.FontSize); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	before := fonts.Phrase.Get().Metrics().Height.Ceil()

	path := filepath.Join(t.TempDir(), "flower.yaml")
	if err := os.WriteFile(path, []byte("text:\n  fontSize: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !ReloadConfig(path) {
		t.Fatal("expected valid config to reload")
	}
	if after := fonts.Phrase.Get().Metrics().Height.Ceil(); after <= before {
		t.Errorf("line height after reload = %d, want more than %d", after, before)
	}
}
