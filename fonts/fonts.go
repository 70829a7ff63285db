package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Phrase FontName = "phrase"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts  = map[FontName]font.Face{}
	parsed = map[FontName]*truetype.Font{}
)

// LoadFontWithSize parses a TrueType font and registers a face of the given size under name
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	parsed[name] = fontData
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Resize replaces the face of a loaded font with one of the given size
func (f FontName) Resize(size float64) error {
	fontData, ok := parsed[f]
	if !ok {
		return fmt.Errorf("font %s not loaded", f)
	}
	fonts[f] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
