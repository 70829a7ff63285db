package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *File)
	}{
		{
			name:        "empty file keeps defaults",
			yamlContent: ``,
			validate: func(t *testing.T, f *File) {
				if f.Flower.PetalCount != Flower.PetalCount {
					t.Errorf("expected petal count %d, got %d", Flower.PetalCount, f.Flower.PetalCount)
				}
				if f.Timing.ResetDelay != Timing.ResetDelay {
					t.Errorf("expected reset delay %s, got %s", Timing.ResetDelay, f.Timing.ResetDelay)
				}
				if len(f.Text.Phrases) != 2 || f.Text.Phrases[0] != "Loves me" {
					t.Errorf("expected default phrases, got %v", f.Text.Phrases)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
flower:
  petalCount: 7
petal:
  gravity: 0.08
timing:
  resetDelay: 3s
  hideDelay: 250ms
`,
			validate: func(t *testing.T, f *File) {
				if f.Flower.PetalCount != 7 {
					t.Errorf("expected petal count 7, got %d", f.Flower.PetalCount)
				}
				if f.Flower.CenterRadius != Flower.CenterRadius {
					t.Errorf("expected untouched center radius %f, got %f", Flower.CenterRadius, f.Flower.CenterRadius)
				}
				if f.Petal.Gravity != 0.08 {
					t.Errorf("expected gravity 0.08, got %f", f.Petal.Gravity)
				}
				if f.Petal.Drag != Petal.Drag {
					t.Errorf("expected untouched drag %f, got %f", Petal.Drag, f.Petal.Drag)
				}
				if f.Timing.ResetDelay != 3*time.Second {
					t.Errorf("expected reset delay 3s, got %s", f.Timing.ResetDelay)
				}
				if f.Timing.HideDelay != 250*time.Millisecond {
					t.Errorf("expected hide delay 250ms, got %s", f.Timing.HideDelay)
				}
				if f.Flower.CenterColor != Flower.CenterColor {
					t.Error("expected colors to be kept")
				}
			},
		},
		{
			name: "phrases replaced",
			yamlContent: `
text:
  phrases: ["She loves me", "She loves me not"]
`,
			validate: func(t *testing.T, f *File) {
				if f.Text.Phrases[0] != "She loves me" || f.Text.Phrases[1] != "She loves me not" {
					t.Errorf("unexpected phrases %v", f.Text.Phrases)
				}
				if Text.Phrases[0] != "Loves me" {
					t.Error("parsing changed the live phrases")
				}
			},
		},
		{
			name:        "zero petals",
			yamlContent: "flower:\n  petalCount: 0\n",
			wantErr:     true,
			errContains: "petalCount",
		},
		{
			name:        "drag above one",
			yamlContent: "petal:\n  drag: 1.5\n",
			wantErr:     true,
			errContains: "petal.drag",
		},
		{
			name:        "min scale out of range",
			yamlContent: "petal:\n  minScale: -0.1\n",
			wantErr:     true,
			errContains: "petal.minScale",
		},
		{
			name:        "three phrases",
			yamlContent: "text:\n  phrases: [a, b, c]\n",
			wantErr:     true,
			errContains: "text.phrases",
		},
		{
			name:        "zero font size",
			yamlContent: "text:\n  fontSize: 0\n",
			wantErr:     true,
			errContains: "text.fontSize",
		},
		{
			name:        "negative delay",
			yamlContent: "timing:\n  revealDelay: -1s\n",
			wantErr:     true,
			errContains: "delays",
		},
		{
			name:        "malformed yaml",
			yamlContent: "flower: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, f)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	f := Current()
	f.Flower.PetalCount = 0
	f.Petal.Shrink = 0
	f.Timing.Tick = 0

	err := f.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"petalCount", "petal.shrink", "timing.tick"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %q", want, err.Error())
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Current().Validate(); err != nil {
		t.Errorf("built-in configuration is invalid: %v", err)
	}
}

func TestLoadFileAndApply(t *testing.T) {
	saved := Current()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "flower.yaml")
	if err := os.WriteFile(path, []byte("flower:\n  petalCount: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Flower.PetalCount != saved.Flower.PetalCount {
		t.Fatal("LoadFile must not apply the file")
	}

	f.Apply()
	if Flower.PetalCount != 5 {
		t.Errorf("expected petal count 5 after apply, got %d", Flower.PetalCount)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestTickIsNotReadFromFile(t *testing.T) {
	f, err := Parse([]byte("timing:\n  tick: 33ms\n  hideDelay: 900ms\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Timing.Tick != Timing.Tick {
		t.Errorf("expected tick to stay %s, got %s", Timing.Tick, f.Timing.Tick)
	}
	if f.Timing.HideDelay != 900*time.Millisecond {
		t.Errorf("expected hide delay 900ms, got %s", f.Timing.HideDelay)
	}
	if got := f.Timing.TPS(); got != 60 {
		t.Errorf("expected 60 updates per second, got %d", got)
	}
}

func TestWindowSizeValidate(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "default size", width: 800, height: 600},
		{name: "zero width", width: 0, height: 600, wantErr: true},
		{name: "zero height", width: 800, height: 0, wantErr: true},
		{name: "negative", width: -1, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Width: tt.width, Height: tt.height}
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
