package theme

import (
	"fmt"
	"image/color"

	"unit-converter/internal/models"
)

// Palette is one complete set of application colors
type Palette struct {
	Background    color.NRGBA
	Foreground    color.NRGBA
	Button        color.NRGBA
	ButtonText    color.NRGBA
	ButtonHover   color.NRGBA
	EntryBack     color.NRGBA
	EntryText     color.NRGBA
	Title         color.NRGBA
	Frame         color.NRGBA
	Highlight     color.NRGBA
	ErrorFlash    color.NRGBA
	SuccessAccent color.NRGBA
}

var (
	LightPalette = Palette{
		Background:    mustHex("#ffffff"),
		Foreground:    mustHex("#2c3e50"),
		Button:        mustHex("#3498db"),
		ButtonText:    mustHex("#ffffff"),
		ButtonHover:   mustHex("#2980b9"),
		EntryBack:     mustHex("#f8f9fa"),
		EntryText:     mustHex("#2c3e50"),
		Title:         mustHex("#2c3e50"),
		Frame:         mustHex("#f8f9fa"),
		Highlight:     mustHex("#e3f2fd"),
		ErrorFlash:    mustHex("#ffebee"),
		SuccessAccent: mustHex("#3498db"),
	}

	DarkPalette = Palette{
		Background:    mustHex("#1a1b1e"),
		Foreground:    mustHex("#e4e6eb"),
		Button:        mustHex("#2d88ff"),
		ButtonText:    mustHex("#ffffff"),
		ButtonHover:   mustHex("#1877f2"),
		EntryBack:     mustHex("#242526"),
		EntryText:     mustHex("#e4e6eb"),
		Title:         mustHex("#2d88ff"),
		Frame:         mustHex("#242526"),
		Highlight:     mustHex("#3a3b3c"),
		ErrorFlash:    mustHex("#5c2b2e"),
		SuccessAccent: mustHex("#2d88ff"),
	}
)

// PaletteFor returns the palette of a variant
func PaletteFor(v models.Variant) Palette {
	if v == models.Dark {
		return DarkPalette
	}
	return LightPalette
}

// ParseHex reads a #rrggbb color
func ParseHex(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
