package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"unit-converter/internal/logger"
	"unit-converter/internal/models"
	"unit-converter/internal/services"
	apptheme "unit-converter/internal/theme"
	"unit-converter/internal/views"
)

const (
	EventConversionComplete = "conversion_complete"
	EventThemeChanged       = "theme_changed"
	EventResultCopied       = "result_copied"
)

// MainController orchestrates the application using MVC pattern.
// Every method runs on the fyne event goroutine; conversions are
// cheap enough to finish inside a click handler.
type MainController struct {
	// Services
	conversionService *services.ConversionService
	clipboardService  *services.ClipboardService

	// Models/Repositories
	history    *models.HistoryRepository
	themeState *models.ThemeState

	// Views
	app      fyne.App
	mainView *views.MainView

	logger logger.Logger
	ctx    context.Context

	// State management
	mu          sync.RWMutex
	lastResult  *models.ConversionResult
	historySize int

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// NewMainController creates a new main controller
func NewMainController(
	ctx context.Context,
	app fyne.App,
	conversionService *services.ConversionService,
	clipboardService *services.ClipboardService,
	history *models.HistoryRepository,
	themeState *models.ThemeState,
	historySize int,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		conversionService: conversionService,
		clipboardService:  clipboardService,
		history:           history,
		themeState:        themeState,
		app:               app,
		logger:            log,
		ctx:               ctx,
		historySize:       historySize,
		eventHandlers:     make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	themeState.OnChange(controller.onVariantChanged)
	controller.applyTheme()
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()

	view.ApplyPalette(mc.themeState.Variant())
	mc.refreshHistory()
}

// OpenCategory shows the converter screen of a category
func (mc *MainController) OpenCategory(name string) {
	category, err := mc.conversionService.Category(name)
	if err != nil {
		mc.handleError("Category unavailable", err)
		return
	}

	mc.clearLastResult()
	if mc.mainView != nil {
		mc.mainView.ShowCategory(category)
		mc.mainView.UpdateStatus(category.Name + " Converter")
	}
	mc.logger.Debug("MainController", "category opened", map[string]interface{}{
		"category": name,
	})
}

// OpenBaseConverter shows the numeral base converter
func (mc *MainController) OpenBaseConverter() {
	mc.clearLastResult()
	if mc.mainView != nil {
		mc.mainView.ShowBaseConverter()
		mc.mainView.UpdateStatus(services.BaseConverterName)
	}
}

// ShowMenu returns to the main menu
func (mc *MainController) ShowMenu() {
	mc.clearLastResult()
	if mc.mainView != nil {
		mc.mainView.ShowMenu()
		mc.mainView.UpdateStatus("Ready")
	}
}

// Convert runs a category conversion and shows its result
func (mc *MainController) Convert(req models.ConversionRequest) models.ConversionResult {
	result := mc.conversionService.Convert(mc.ctx, req)
	mc.showResult(result)
	return result
}

// ConvertBase runs a base conversion and shows its result
func (mc *MainController) ConvertBase(req models.BaseRequest) models.ConversionResult {
	result := mc.conversionService.ConvertBase(mc.ctx, req)
	mc.showResult(result)
	return result
}

func (mc *MainController) showResult(result models.ConversionResult) {
	mc.mu.Lock()
	mc.lastResult = &result
	mc.mu.Unlock()

	if mc.mainView != nil {
		mc.mainView.SetResult(result)
		if result.Failed {
			mc.mainView.UpdateStatus("Conversion failed")
		} else {
			mc.mainView.UpdateStatus("Converted")
		}
	}

	mc.emitEvent(EventConversionComplete, result)
}

// ToggleTheme switches between the light and dark palettes
func (mc *MainController) ToggleTheme() models.Variant {
	return mc.themeState.Toggle()
}

// CopyResult puts the last successful result on the clipboard
func (mc *MainController) CopyResult() error {
	mc.mu.RLock()
	last := mc.lastResult
	mc.mu.RUnlock()

	var err error
	switch {
	case last == nil || last.Failed:
		err = services.ErrNothingToCopy
	default:
		err = mc.clipboardService.Copy(last.Text)
	}

	if err != nil {
		if mc.mainView != nil {
			mc.mainView.UpdateStatus("Copy failed: " + err.Error())
		}
		return err
	}

	if mc.mainView != nil {
		mc.mainView.UpdateStatus("Result copied")
	}
	mc.emitEvent(EventResultCopied, *last)
	return nil
}

// ShowAbout opens the About dialog
func (mc *MainController) ShowAbout() {
	if mc.mainView != nil {
		mc.mainView.ShowAbout()
	}
}

// GetApplicationState returns the current application state
func (mc *MainController) GetApplicationState() ApplicationState {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	state := ApplicationState{
		Variant:      mc.themeState.Variant(),
		HistoryCount: mc.history.Len(),
		Screen:       views.ScreenMenu,
	}
	if mc.mainView != nil {
		state.Screen = mc.mainView.CurrentScreen()
	}
	if mc.lastResult != nil {
		state.LastResult = mc.lastResult.Text
		state.LastFailed = mc.lastResult.Failed
	}
	return state
}

// ApplicationState represents the current state of the application
type ApplicationState struct {
	Screen       views.Screen
	Variant      models.Variant
	HistoryCount int
	LastResult   string
	LastFailed   bool
}

// Shutdown releases controller state when the application exits
func (mc *MainController) Shutdown() {
	mc.clearLastResult()

	mc.eventMu.Lock()
	mc.eventHandlers = make(map[string][]EventHandler)
	mc.eventMu.Unlock()

	mc.logger.Info("MainController", "controller shutdown", map[string]interface{}{
		"history": mc.history.Len(),
	})
}

func (mc *MainController) clearLastResult() {
	mc.mu.Lock()
	mc.lastResult = nil
	mc.mu.Unlock()
}

func (mc *MainController) applyTheme() {
	if mc.app == nil {
		return
	}
	mc.app.Settings().SetTheme(apptheme.NewConverterTheme(mc.themeState))
}

func (mc *MainController) onVariantChanged(variant models.Variant) {
	mc.applyTheme()
	if mc.mainView != nil {
		mc.mainView.ApplyPalette(variant)
	}
	mc.emitEvent(EventThemeChanged, variant)
}

func (mc *MainController) refreshHistory() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.UpdateHistory(mc.history.Recent(mc.historySize), mc.history.Len())
}

// handleError logs an error and reports it to the user
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"context": title,
	})
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(title)
		mc.mainView.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}

// Event system methods

// initializeEventHandlers sets up default event handlers
func (mc *MainController) initializeEventHandlers() {
	mc.AddEventListener(EventConversionComplete, mc.onConversionComplete)
	mc.AddEventListener(EventThemeChanged, mc.onThemeChanged)
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetCategoryHandler(mc.OpenCategory)
	mc.mainView.SetBaseConverterHandler(mc.OpenBaseConverter)
	mc.mainView.SetConvertHandler(func(req models.ConversionRequest) { mc.Convert(req) })
	mc.mainView.SetBaseConvertHandler(func(req models.BaseRequest) { mc.ConvertBase(req) })
	mc.mainView.SetThemeToggleHandler(func() { mc.ToggleTheme() })
	mc.mainView.SetBackHandler(mc.ShowMenu)
	mc.mainView.SetCopyHandler(func() { _ = mc.CopyResult() })
}

// AddEventListener adds an event handler for a specific event type
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs all handlers for an event type in registration order.
// Handlers run inline because they touch widgets.
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := append([]EventHandler(nil), mc.eventHandlers[eventType]...)
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.logger.Error("MainController", err, map[string]interface{}{
				"event": eventType,
			})
		}
	}
}

// Event handlers

var errUnexpectedEventData = errors.New("unexpected event data")

// onConversionComplete refreshes the history panel
func (mc *MainController) onConversionComplete(data interface{}) error {
	if _, ok := data.(models.ConversionResult); !ok {
		return fmt.Errorf("%s: %w", EventConversionComplete, errUnexpectedEventData)
	}
	mc.refreshHistory()
	return nil
}

// onThemeChanged records the palette switch
func (mc *MainController) onThemeChanged(data interface{}) error {
	variant, ok := data.(models.Variant)
	if !ok {
		return fmt.Errorf("%s: %w", EventThemeChanged, errUnexpectedEventData)
	}
	mc.logger.Info("MainController", "theme changed", map[string]interface{}{
		"variant": variant.String(),
	})
	return nil
}
