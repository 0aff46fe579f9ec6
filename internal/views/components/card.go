package components

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	// FlashDuration matches the click feedback of the converter buttons
	FlashDuration = 150 * time.Millisecond

	cardMinWidth  = 100
	cardMinHeight = 60
)

// Card wraps content on a colored, rounded background that can flash
// to signal a new result.
type Card struct {
	container *fyne.Container
	bg        *canvas.Rectangle
	fill      color.NRGBA
}

// NewCard creates a card around content
func NewCard(content fyne.CanvasObject, fill color.NRGBA) *Card {
	bg := canvas.NewRectangle(fill)
	bg.CornerRadius = 6
	bg.SetMinSize(fyne.NewSize(cardMinWidth, cardMinHeight))

	return &Card{
		container: container.NewStack(bg, container.NewPadded(content)),
		bg:        bg,
		fill:      fill,
	}
}

// SetFill changes the resting background color
func (c *Card) SetFill(fill color.NRGBA) {
	c.fill = fill
	c.bg.FillColor = fill
	c.bg.Refresh()
}

// Fill returns the resting background color
func (c *Card) Fill() color.NRGBA {
	return c.fill
}

// Flash animates the background from accent back to the resting color
func (c *Card) Flash(accent color.NRGBA) {
	anim := canvas.NewColorRGBAAnimation(accent, c.fill, FlashDuration, func(col color.Color) {
		c.bg.FillColor = col
		canvas.Refresh(c.bg)
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

// GetContainer returns the card container
func (c *Card) GetContainer() *fyne.Container {
	return c.container
}
