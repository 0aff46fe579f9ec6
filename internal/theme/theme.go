package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"unit-converter/internal/models"
)

// ConverterTheme draws widgets with the palette selected in ThemeState.
// The OS light/dark preference is ignored so the in-app toggle wins.
type ConverterTheme struct {
	state *models.ThemeState
}

func NewConverterTheme(state *models.ThemeState) fyne.Theme {
	return &ConverterTheme{state: state}
}

func (t *ConverterTheme) variant() fyne.ThemeVariant {
	if t.state.Variant() == models.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t *ConverterTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := PaletteFor(t.state.Variant())

	switch name {
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.Foreground
	case theme.ColorNamePrimary:
		return p.Button
	case theme.ColorNameForegroundOnPrimary:
		return p.ButtonText
	case theme.ColorNameButton:
		return p.Highlight
	case theme.ColorNameHover:
		return withAlpha(p.ButtonHover, 0x40)
	case theme.ColorNamePressed:
		return withAlpha(p.ButtonHover, 0x80)
	case theme.ColorNameFocus:
		return withAlpha(p.ButtonHover, 0x7f)
	case theme.ColorNameInputBackground:
		return p.EntryBack
	case theme.ColorNameInputBorder:
		return p.Button
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return p.Frame
	case theme.ColorNameSeparator:
		return p.Highlight
	case theme.ColorNameSelection:
		return withAlpha(p.Button, 0x40)
	default:
		return theme.DefaultTheme().Color(name, t.variant())
	}
}

func (t *ConverterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *ConverterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *ConverterTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
