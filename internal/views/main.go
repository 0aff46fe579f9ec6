package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"unit-converter/internal/config"
	"unit-converter/internal/conversion"
	"unit-converter/internal/models"
	apptheme "unit-converter/internal/theme"
	"unit-converter/internal/views/components"
)

// Screen identifies what the body of the window shows
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenCategory
	ScreenBase
)

func (s Screen) String() string {
	switch s {
	case ScreenCategory:
		return "category"
	case ScreenBase:
		return "base"
	default:
		return "menu"
	}
}

const historySplitOffset = 0.72

// MainView represents the main application view using MVC pattern.
// The body shows one screen at a time; switching screens replaces it.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	body          *fyne.Container
	menu          *components.Menu
	converter     *components.ConverterScreen
	base          *components.BaseScreen
	statusBar     *components.StatusBar
	historyPanel  *components.HistoryPanel

	palette apptheme.Palette
	screen  Screen

	// Event handlers - connected to controller
	categoryHandler      func(string)
	baseConverterHandler func()
	convertHandler       func(models.ConversionRequest)
	baseConvertHandler   func(models.BaseRequest)
	themeToggleHandler   func()
	backHandler          func()
	copyHandler          func()
}

// NewMainView creates a new main view showing the menu
func NewMainView(window fyne.Window, groups []conversion.Group, palette apptheme.Palette) *MainView {
	view := &MainView{
		window:  window,
		palette: palette,
	}

	view.initializeComponents(groups)
	view.buildLayout()
	view.setupEventHandlers()
	view.ShowMenu()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(groups []conversion.Group) {
	mv.menu = components.NewMenu(groups, mv.palette)
	mv.statusBar = components.NewStatusBar()
	mv.historyPanel = components.NewHistoryPanel()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.body = container.NewStack()

	split := container.NewHSplit(mv.body, mv.historyPanel.GetContainer())
	split.Offset = historySplitOffset

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		split,
	)

	// the window cannot shrink below the content minimum
	floor := canvas.NewRectangle(color.Transparent)
	floor.SetMinSize(fyne.NewSize(config.MinWindowWidth, config.MinWindowHeight))

	mv.window.SetContent(container.NewStack(floor, mv.mainContainer))
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.menu.SetCategoryHandler(func(name string) {
		if mv.categoryHandler != nil {
			mv.categoryHandler(name)
		}
	})

	mv.menu.SetBaseConverterHandler(func() {
		if mv.baseConverterHandler != nil {
			mv.baseConverterHandler()
		}
	})

	mv.menu.SetThemeToggleHandler(func() {
		if mv.themeToggleHandler != nil {
			mv.themeToggleHandler()
		}
	})
}

func (mv *MainView) onConvert(req models.ConversionRequest) {
	if mv.convertHandler != nil {
		mv.convertHandler(req)
	}
}

func (mv *MainView) onBaseConvert(req models.BaseRequest) {
	if mv.baseConvertHandler != nil {
		mv.baseConvertHandler(req)
	}
}

func (mv *MainView) onBack() {
	if mv.backHandler != nil {
		mv.backHandler()
	}
}

func (mv *MainView) onCopy() {
	if mv.copyHandler != nil {
		mv.copyHandler()
	}
}

// Event handler setters - called by controller

// SetCategoryHandler sets the handler for menu category buttons
func (mv *MainView) SetCategoryHandler(handler func(string)) {
	mv.categoryHandler = handler
}

// SetBaseConverterHandler sets the handler for the base converter button
func (mv *MainView) SetBaseConverterHandler(handler func()) {
	mv.baseConverterHandler = handler
}

// SetConvertHandler sets the handler for category conversions
func (mv *MainView) SetConvertHandler(handler func(models.ConversionRequest)) {
	mv.convertHandler = handler
}

// SetBaseConvertHandler sets the handler for base conversions
func (mv *MainView) SetBaseConvertHandler(handler func(models.BaseRequest)) {
	mv.baseConvertHandler = handler
}

// SetThemeToggleHandler sets the handler for the theme toggle
func (mv *MainView) SetThemeToggleHandler(handler func()) {
	mv.themeToggleHandler = handler
}

// SetBackHandler sets the handler for returning to the menu
func (mv *MainView) SetBackHandler(handler func()) {
	mv.backHandler = handler
}

// SetCopyHandler sets the handler for copying the result
func (mv *MainView) SetCopyHandler(handler func()) {
	mv.copyHandler = handler
}

// UI update methods - called by controller

// ShowMenu replaces the body with the main menu
func (mv *MainView) ShowMenu() {
	mv.converter = nil
	mv.base = nil
	mv.screen = ScreenMenu
	mv.setBody(mv.menu.GetContainer(), nil)
}

// ShowCategory replaces the body with a fresh converter screen
func (mv *MainView) ShowCategory(category *conversion.Category) {
	screen := components.NewConverterScreen(category, mv.palette)
	screen.SetConvertHandler(mv.onConvert)
	screen.SetBackHandler(mv.onBack)
	screen.SetCopyHandler(mv.onCopy)

	mv.converter = screen
	mv.base = nil
	mv.screen = ScreenCategory
	mv.setBody(container.NewVScroll(screen.GetContainer()), screen.FocusTarget())
}

// ShowBaseConverter replaces the body with a fresh base converter screen
func (mv *MainView) ShowBaseConverter() {
	screen := components.NewBaseScreen(mv.palette)
	screen.SetConvertHandler(mv.onBaseConvert)
	screen.SetBackHandler(mv.onBack)

	mv.base = screen
	mv.converter = nil
	mv.screen = ScreenBase
	mv.setBody(container.NewVScroll(screen.GetContainer()), screen.FocusTarget())
}

func (mv *MainView) setBody(content fyne.CanvasObject, focus fyne.Focusable) {
	mv.body.Objects = []fyne.CanvasObject{content}
	mv.body.Refresh()

	if focus != nil {
		mv.window.Canvas().Focus(focus)
	}
}

// SetResult shows a result on the screen it belongs to. Results for a
// screen that has since been closed are dropped.
func (mv *MainView) SetResult(result models.ConversionResult) {
	switch mv.screen {
	case ScreenCategory:
		if mv.converter.Category().Name == result.Category {
			mv.converter.SetResult(result)
		}
	case ScreenBase:
		mv.base.SetResult(result)
	}
}

// ResultText returns the result shown on the current screen
func (mv *MainView) ResultText() string {
	switch mv.screen {
	case ScreenCategory:
		return mv.converter.ResultText()
	case ScreenBase:
		return mv.base.ResultText()
	default:
		return ""
	}
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateHistory refreshes the history panel and counter
func (mv *MainView) UpdateHistory(results []models.ConversionResult, total int) {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, r.Summary())
	}
	mv.historyPanel.SetEntries(lines)
	mv.statusBar.SetHistoryCount(total)
}

// ApplyPalette recolors the canvas objects the fyne theme does not reach
func (mv *MainView) ApplyPalette(variant models.Variant) {
	mv.palette = apptheme.PaletteFor(variant)
	mv.menu.ApplyPalette(mv.palette)
	if mv.converter != nil {
		mv.converter.ApplyPalette(mv.palette)
	}
	if mv.base != nil {
		mv.base.ApplyPalette(mv.palette)
	}
	mv.statusBar.SetThemeInfo(variant.String())
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// CurrentScreen reports which screen the body shows
func (mv *MainView) CurrentScreen() Screen {
	return mv.screen
}

// Menu returns the menu component
func (mv *MainView) Menu() *components.Menu {
	return mv.menu
}

// Converter returns the open converter screen, nil unless a category is shown
func (mv *MainView) Converter() *components.ConverterScreen {
	return mv.converter
}

// BaseConverter returns the open base screen, nil unless it is shown
func (mv *MainView) BaseConverter() *components.BaseScreen {
	return mv.base
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// HistoryPanel returns the history panel component
func (mv *MainView) HistoryPanel() *components.HistoryPanel {
	return mv.historyPanel
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
