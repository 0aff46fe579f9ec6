package components

import (
	"strconv"

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
	DefaultFromBase = 10
	DefaultToBase   = 16
)

// BaseScreen converts whole numbers between numeral bases
type BaseScreen struct {
	container *fyne.Container
	palette   apptheme.Palette

	title         *canvas.Text
	numberEntry   *widget.Entry
	fromSelect    *widget.Select
	toSelect      *widget.Select
	convertButton *widget.Button
	backButton    *widget.Button
	resultEntry   *widget.Entry
	resultCard    *Card
	inputCard     *Card

	convertHandler func(models.BaseRequest)
	backHandler    func()
}

// NewBaseScreen creates the base converter screen
func NewBaseScreen(palette apptheme.Palette) *BaseScreen {
	bs := &BaseScreen{palette: palette}
	bs.createComponents()
	bs.buildLayout()
	return bs
}

func baseOptions() []string {
	options := make([]string, 0, len(conversion.SupportedBases))
	for _, base := range conversion.SupportedBases {
		options = append(options, strconv.Itoa(base))
	}
	return options
}

func (bs *BaseScreen) createComponents() {
	bs.title = canvas.NewText(BaseConverterLabel, bs.palette.Title)
	bs.title.TextSize = screenTitleTextSize
	bs.title.TextStyle = fyne.TextStyle{Bold: true}
	bs.title.Alignment = fyne.TextAlignCenter

	bs.numberEntry = widget.NewEntry()
	bs.numberEntry.SetPlaceHolder("Enter number")
	bs.numberEntry.OnSubmitted = func(string) {
		bs.submit()
	}

	options := baseOptions()
	bs.fromSelect = widget.NewSelect(options, nil)
	bs.fromSelect.SetSelected(strconv.Itoa(DefaultFromBase))
	bs.toSelect = widget.NewSelect(options, nil)
	bs.toSelect.SetSelected(strconv.Itoa(DefaultToBase))

	bs.convertButton = widget.NewButton(ConvertLabel, bs.submit)
	bs.convertButton.Importance = widget.HighImportance

	bs.backButton = widget.NewButton(BackLabel, func() {
		if bs.backHandler != nil {
			bs.backHandler()
		}
	})

	// left editable so the result can be selected and copied
	bs.resultEntry = widget.NewEntry()
	bs.resultEntry.SetPlaceHolder("Result")
}

func (bs *BaseScreen) buildLayout() {
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Number:"), bs.numberEntry,
		widget.NewLabel("From Base:"), bs.fromSelect,
		widget.NewLabel("To Base:"), bs.toSelect,
	)
	bs.inputCard = NewCard(form, bs.palette.Frame)
	bs.resultCard = NewCard(container.New(layout.NewFormLayout(),
		widget.NewLabel("Result:"), bs.resultEntry,
	), bs.palette.Frame)

	bs.container = container.NewVBox(
		container.NewPadded(bs.title),
		bs.inputCard.GetContainer(),
		bs.convertButton,
		bs.resultCard.GetContainer(),
		bs.backButton,
	)
}

func (bs *BaseScreen) submit() {
	if bs.convertHandler == nil {
		return
	}
	bs.convertHandler(bs.Request())
}

// Request snapshots the current input. An unselected base reads as 0,
// which the converter rejects.
func (bs *BaseScreen) Request() models.BaseRequest {
	from, _ := strconv.Atoi(bs.fromSelect.Selected)
	to, _ := strconv.Atoi(bs.toSelect.Selected)
	return models.BaseRequest{
		Input:    bs.numberEntry.Text,
		FromBase: from,
		ToBase:   to,
	}
}

// SetConvertHandler sets the handler for Convert and Enter
func (bs *BaseScreen) SetConvertHandler(handler func(models.BaseRequest)) {
	bs.convertHandler = handler
}

// SetBackHandler sets the handler for the back button
func (bs *BaseScreen) SetBackHandler(handler func()) {
	bs.backHandler = handler
}

// SetResult replaces the result entry text
func (bs *BaseScreen) SetResult(result models.ConversionResult) {
	bs.resultEntry.SetText(result.Text)
	if result.Failed {
		bs.resultCard.Flash(bs.palette.ErrorFlash)
		return
	}
	bs.resultCard.Flash(bs.palette.Highlight)
}

func (bs *BaseScreen) ResultText() string {
	return bs.resultEntry.Text
}

func (bs *BaseScreen) NumberEntry() *widget.Entry {
	return bs.numberEntry
}

func (bs *BaseScreen) FromSelect() *widget.Select {
	return bs.fromSelect
}

func (bs *BaseScreen) ToSelect() *widget.Select {
	return bs.toSelect
}

func (bs *BaseScreen) ConvertButton() *widget.Button {
	return bs.convertButton
}

func (bs *BaseScreen) BackButton() *widget.Button {
	return bs.backButton
}

func (bs *BaseScreen) FocusTarget() fyne.Focusable {
	return bs.numberEntry
}

// ApplyPalette recolors the title and cards
func (bs *BaseScreen) ApplyPalette(palette apptheme.Palette) {
	bs.palette = palette
	bs.title.Color = palette.Title
	bs.title.Refresh()
	bs.inputCard.SetFill(palette.Frame)
	bs.resultCard.SetFill(palette.Frame)
}

// GetContainer returns the screen container
func (bs *BaseScreen) GetContainer() *fyne.Container {
	return bs.container
}
