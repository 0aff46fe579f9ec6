package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"unit-converter/internal/theme"
)

const (
	// baseSize is the canvas the glyphs are drawn on before upscaling
	baseSize    = 32
	DefaultSize = 256
	label       = "1:1"
)

// Render draws the application icon as PNG bytes of size x size pixels:
// the palette's button color with the label in button text color.
func Render(size int, palette theme.Palette) ([]byte, error) {
	if size < baseSize {
		return nil, fmt.Errorf("icon size %d below minimum %d", size, baseSize)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, baseSize, baseSize))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(palette.Button), image.Point{}, draw.Src)

	band := image.Rect(0, baseSize-6, baseSize, baseSize)
	draw.Draw(canvas, band, image.NewUniform(palette.ButtonHover), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(palette.ButtonText),
		Face: face,
	}
	width := drawer.MeasureString(label)
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(baseSize) - width) / 2,
		Y: fixed.I((baseSize-6)/2 + face.Ascent/2),
	}
	drawer.DrawString(label)

	scaled := imaging.Resize(canvas, size, size, imaging.NearestNeighbor)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, scaled, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

// Resource renders the icon as a fyne resource for the window and app
func Resource(palette theme.Palette) (fyne.Resource, error) {
	data, err := Render(DefaultSize, palette)
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("unit-converter.png", data), nil
}
