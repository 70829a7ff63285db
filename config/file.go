package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML override file layout. Keys missing from the file keep
// the values that were current when it was loaded.
//
// Example:
//
//	flower:
//	  petalCount: 7
//	petal:
//	  gravity: 0.08
//	timing:
//	  resetDelay: 3s
type File struct {
	Flower FlowerConfig       `yaml:"flower"`
	Petal  PetalPhysicsConfig `yaml:"petal"`
	Text   TextConfig         `yaml:"text"`
	Timing TimingConfig       `yaml:"timing"`
}

// Current returns a File holding the live configuration
func Current() *File {
	f := &File{
		Flower: Flower,
		Petal:  Petal,
		Text:   Text,
		Timing: Timing,
	}
	f.Text.Phrases = append([]string(nil), Text.Phrases...)
	return f
}

// LoadFile reads a YAML override file on top of the live configuration.
// The result is validated but not applied.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML override data on top of the live configuration
func Parse(data []byte) (*File, error) {
	f := Current()
	// A list replaces rather than merges, so decode phrases separately
	// and only take them when present.
	f.Text.Phrases = nil
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if f.Text.Phrases == nil {
		f.Text.Phrases = append([]string(nil), Text.Phrases...)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return f, nil
}

// Validate checks that every value keeps the animation well defined
func (f *File) Validate() error {
	var errs []error

	if f.Flower.PetalCount < 1 {
		errs = append(errs, fmt.Errorf("flower.petalCount must be at least 1, got %d", f.Flower.PetalCount))
	}
	if f.Flower.CenterRadius <= 0 {
		errs = append(errs, fmt.Errorf("flower.centerRadius must be positive, got %.2f", f.Flower.CenterRadius))
	}
	if f.Flower.PetalLength <= 0 {
		errs = append(errs, fmt.Errorf("flower.petalLength must be positive, got %.2f", f.Flower.PetalLength))
	}
	if f.Flower.StemHeight < 0 {
		errs = append(errs, fmt.Errorf("flower.stemHeight must not be negative, got %.2f", f.Flower.StemHeight))
	}

	if f.Petal.Drag <= 0 || f.Petal.Drag > 1 {
		errs = append(errs, fmt.Errorf("petal.drag must be in (0, 1], got %.3f", f.Petal.Drag))
	}
	if f.Petal.Shrink <= 0 || f.Petal.Shrink > 1 {
		errs = append(errs, fmt.Errorf("petal.shrink must be in (0, 1], got %.3f", f.Petal.Shrink))
	}
	if f.Petal.MinScale < 0 || f.Petal.MinScale > 1 {
		errs = append(errs, fmt.Errorf("petal.minScale must be in [0, 1], got %.3f", f.Petal.MinScale))
	}
	if f.Petal.Gravity < 0 {
		errs = append(errs, fmt.Errorf("petal.gravity must not be negative, got %.3f", f.Petal.Gravity))
	}
	if f.Petal.FadeRate <= 0 {
		errs = append(errs, fmt.Errorf("petal.fadeRate must be positive, got %.3f", f.Petal.FadeRate))
	}

	if len(f.Text.Phrases) != 2 {
		errs = append(errs, fmt.Errorf("text.phrases must hold exactly 2 phrases, got %d", len(f.Text.Phrases)))
	}
	if f.Text.TransitionTime <= 0 {
		errs = append(errs, fmt.Errorf("text.transitionTime must be positive, got %.2f", f.Text.TransitionTime))
	}
	if f.Text.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("text.fontSize must be positive, got %.2f", f.Text.FontSize))
	}

	if f.Timing.Tick <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick must be positive, got %s", f.Timing.Tick))
	}
	if f.Timing.HideDelay < 0 || f.Timing.RevealDelay < 0 || f.Timing.ResetDelay < 0 {
		errs = append(errs, errors.New("timing delays must not be negative"))
	}

	return errors.Join(errs...)
}

// Apply installs the file as the live configuration
func (f *File) Apply() {
	Flower = f.Flower
	Petal = f.Petal
	Text = f.Text
	Timing = f.Timing
}
