package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"unit-converter/internal/conversion"
	"unit-converter/internal/models"
	apptheme "unit-converter/internal/theme"
)

const (
	BackLabel    = "Back to Main Menu"
	ConvertLabel = "Convert"
	CopyLabel    = "Copy Result"
)

// ConverterScreen is the value entry, unit pickers and result for one category
type ConverterScreen struct {
	container *fyne.Container
	category  *conversion.Category
	palette   apptheme.Palette

	title         *canvas.Text
	valueEntry    *widget.Entry
	fromSelect    *widget.Select
	toSelect      *widget.Select
	convertButton *widget.Button
	copyButton    *widget.Button
	backButton    *widget.Button
	resultLabel   *widget.Label
	resultCard    *Card
	inputCard     *Card

	convertHandler func(models.ConversionRequest)
	copyHandler    func()
	backHandler    func()
}

// NewConverterScreen creates the screen for category
func NewConverterScreen(category *conversion.Category, palette apptheme.Palette) *ConverterScreen {
	cs := &ConverterScreen{
		category: category,
		palette:  palette,
	}
	cs.createComponents()
	cs.buildLayout()
	return cs
}

func (cs *ConverterScreen) createComponents() {
	cs.title = canvas.NewText(cs.category.Name+" Converter", cs.palette.Title)
	cs.title.TextSize = screenTitleTextSize
	cs.title.TextStyle = fyne.TextStyle{Bold: true}
	cs.title.Alignment = fyne.TextAlignCenter

	cs.valueEntry = widget.NewEntry()
	cs.valueEntry.SetPlaceHolder("Enter value")
	cs.valueEntry.OnSubmitted = func(string) {
		cs.submit()
	}

	units := cs.category.Units()
	cs.fromSelect = widget.NewSelect(units, nil)
	cs.fromSelect.SetSelected(cs.category.DefaultFrom)
	cs.toSelect = widget.NewSelect(units, nil)
	cs.toSelect.SetSelected(cs.category.DefaultTo)

	cs.convertButton = widget.NewButton(ConvertLabel, cs.submit)
	cs.convertButton.Importance = widget.HighImportance

	cs.copyButton = widget.NewButton(CopyLabel, func() {
		if cs.copyHandler != nil {
			cs.copyHandler()
		}
	})
	cs.copyButton.Disable()

	cs.backButton = widget.NewButton(BackLabel, func() {
		if cs.backHandler != nil {
			cs.backHandler()
		}
	})

	cs.resultLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	cs.resultLabel.Wrapping = fyne.TextWrapWord
}

func (cs *ConverterScreen) buildLayout() {
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Value:"), cs.valueEntry,
		widget.NewLabel("From:"), cs.fromSelect,
		widget.NewLabel("To:"), cs.toSelect,
	)
	cs.inputCard = NewCard(form, cs.palette.Frame)
	cs.resultCard = NewCard(cs.resultLabel, cs.palette.Frame)

	cs.container = container.NewVBox(
		container.NewPadded(cs.title),
		cs.inputCard.GetContainer(),
		cs.convertButton,
		cs.resultCard.GetContainer(),
		container.NewGridWithColumns(2, cs.copyButton, cs.backButton),
	)
}

func (cs *ConverterScreen) submit() {
	if cs.convertHandler == nil {
		return
	}
	cs.convertHandler(cs.Request())
}

// Request snapshots the current input
func (cs *ConverterScreen) Request() models.ConversionRequest {
	return models.ConversionRequest{
		Category: cs.category.Name,
		Input:    cs.valueEntry.Text,
		From:     cs.fromSelect.Selected,
		To:       cs.toSelect.Selected,
	}
}

// SetConvertHandler sets the handler for Convert and Enter
func (cs *ConverterScreen) SetConvertHandler(handler func(models.ConversionRequest)) {
	cs.convertHandler = handler
}

// SetCopyHandler sets the handler for the copy button
func (cs *ConverterScreen) SetCopyHandler(handler func()) {
	cs.copyHandler = handler
}

// SetBackHandler sets the handler for the back button
func (cs *ConverterScreen) SetBackHandler(handler func()) {
	cs.backHandler = handler
}

// SetResult shows result and flashes the result card
func (cs *ConverterScreen) SetResult(result models.ConversionResult) {
	cs.resultLabel.SetText(result.Text)
	if result.Failed {
		cs.copyButton.Disable()
		cs.resultCard.Flash(cs.palette.ErrorFlash)
		return
	}
	cs.copyButton.Enable()
	cs.resultCard.Flash(cs.palette.Highlight)
}

// ResultText returns the text shown in the result area
func (cs *ConverterScreen) ResultText() string {
	return cs.resultLabel.Text
}

func (cs *ConverterScreen) Category() *conversion.Category {
	return cs.category
}

func (cs *ConverterScreen) ValueEntry() *widget.Entry {
	return cs.valueEntry
}

func (cs *ConverterScreen) FromSelect() *widget.Select {
	return cs.fromSelect
}

func (cs *ConverterScreen) ToSelect() *widget.Select {
	return cs.toSelect
}

func (cs *ConverterScreen) ConvertButton() *widget.Button {
	return cs.convertButton
}

func (cs *ConverterScreen) CopyButton() *widget.Button {
	return cs.copyButton
}

func (cs *ConverterScreen) BackButton() *widget.Button {
	return cs.backButton
}

// FocusTarget is the widget that should take keyboard focus when shown
func (cs *ConverterScreen) FocusTarget() fyne.Focusable {
	return cs.valueEntry
}

// ApplyPalette recolors the title and cards
func (cs *ConverterScreen) ApplyPalette(palette apptheme.Palette) {
	cs.palette = palette
	cs.title.Color = palette.Title
	cs.title.Refresh()
	cs.inputCard.SetFill(palette.Frame)
	cs.resultCard.SetFill(palette.Frame)
}

// GetContainer returns the screen container
func (cs *ConverterScreen) GetContainer() *fyne.Container {
	return cs.container
}
