package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"unit-converter/internal/conversion"
	apptheme "unit-converter/internal/theme"
)

const (
	MenuTitle           = "Unit Converter"
	BaseConverterLabel  = "Base Converter"
	ToggleThemeLabel    = "Toggle Theme"
	menuTitleTextSize   = 28
	groupTitleTextSize  = 16
	screenTitleTextSize = 24
)

// Menu is the main screen: one column of category buttons per group
type Menu struct {
	container   *fyne.Container
	groups      []conversion.Group
	title       *canvas.Text
	groupTitles []*canvas.Text
	cards       []*Card
	buttons     map[string]*widget.Button
	baseButton  *widget.Button
	themeButton *widget.Button

	categoryHandler func(string)
	baseHandler     func()
	themeHandler    func()
}

// NewMenu creates the main menu for the given groups
func NewMenu(groups []conversion.Group, palette apptheme.Palette) *Menu {
	m := &Menu{
		groups:  groups,
		buttons: make(map[string]*widget.Button),
	}
	m.createComponents(palette)
	m.buildLayout(palette)
	return m
}

func (m *Menu) createComponents(palette apptheme.Palette) {
	m.title = canvas.NewText(MenuTitle, palette.Title)
	m.title.TextSize = menuTitleTextSize
	m.title.TextStyle = fyne.TextStyle{Bold: true}
	m.title.Alignment = fyne.TextAlignCenter

	for _, group := range m.groups {
		for _, name := range group.Categories {
			name := name
			button := widget.NewButton(name, func() {
				if m.categoryHandler != nil {
					m.categoryHandler(name)
				}
			})
			button.Importance = widget.HighImportance
			m.buttons[name] = button
		}
	}

	m.baseButton = widget.NewButton(BaseConverterLabel, func() {
		if m.baseHandler != nil {
			m.baseHandler()
		}
	})
	m.baseButton.Importance = widget.HighImportance

	m.themeButton = widget.NewButton(ToggleThemeLabel, func() {
		if m.themeHandler != nil {
			m.themeHandler()
		}
	})
	m.themeButton.Importance = widget.HighImportance
}

func (m *Menu) buildLayout(palette apptheme.Palette) {
	columns := make([]fyne.CanvasObject, 0, len(m.groups))
	for _, group := range m.groups {
		groupTitle := canvas.NewText(group.Name, palette.Title)
		groupTitle.TextSize = groupTitleTextSize
		groupTitle.TextStyle = fyne.TextStyle{Bold: true}
		groupTitle.Alignment = fyne.TextAlignCenter
		m.groupTitles = append(m.groupTitles, groupTitle)

		column := container.NewVBox(groupTitle, widget.NewSeparator())
		for _, name := range group.Categories {
			column.Add(m.buttons[name])
		}

		card := NewCard(column, palette.Frame)
		m.cards = append(m.cards, card)
		columns = append(columns, card.GetContainer())
	}

	grid := container.NewGridWithColumns(len(columns), columns...)

	m.container = container.NewBorder(
		container.NewVBox(container.NewPadded(m.title), widget.NewSeparator()),
		container.NewVBox(m.baseButton, m.themeButton),
		nil,
		nil,
		container.NewVScroll(container.NewVBox(grid, layout.NewSpacer())),
	)
}

// SetCategoryHandler sets the handler for category buttons
func (m *Menu) SetCategoryHandler(handler func(string)) {
	m.categoryHandler = handler
}

// SetBaseConverterHandler sets the handler for the base converter button
func (m *Menu) SetBaseConverterHandler(handler func()) {
	m.baseHandler = handler
}

// SetThemeToggleHandler sets the handler for the theme toggle button
func (m *Menu) SetThemeToggleHandler(handler func()) {
	m.themeHandler = handler
}

// CategoryButton returns the button opening a category
func (m *Menu) CategoryButton(name string) *widget.Button {
	return m.buttons[name]
}

func (m *Menu) BaseConverterButton() *widget.Button {
	return m.baseButton
}

func (m *Menu) ThemeButton() *widget.Button {
	return m.themeButton
}

// ApplyPalette recolors the parts the fyne theme does not reach
func (m *Menu) ApplyPalette(palette apptheme.Palette) {
	m.title.Color = palette.Title
	m.title.Refresh()
	for _, t := range m.groupTitles {
		t.Color = palette.Title
		t.Refresh()
	}
	for _, c := range m.cards {
		c.SetFill(palette.Frame)
	}
}

// GetContainer returns the menu container
func (m *Menu) GetContainer() *fyne.Container {
	return m.container
}
