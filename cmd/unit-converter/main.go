package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"unit-converter/internal/config"
	"unit-converter/internal/controllers"
	"unit-converter/internal/conversion"
	"unit-converter/internal/icon"
	"unit-converter/internal/logger"
	"unit-converter/internal/models"
	"unit-converter/internal/services"
	"unit-converter/internal/shutdown"
	apptheme "unit-converter/internal/theme"
	"unit-converter/internal/views"
)

// Application represents the main application using MVC architecture
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Models/Repositories
	history    *models.HistoryRepository
	themeState *models.ThemeState

	// Lifecycle management
	shutdown *shutdown.Manager
	ctx      context.Context
	cancel   context.CancelFunc
}

func main() {
	cfg := config.Load()
	appLogger := logger.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.Version,
	})
	fyneApp := app.NewWithID(config.AppID)

	application, err := NewApplication(ctx, fyneApp, cfg, appLogger)
	if err != nil {
		appLogger.Error("Application", err, nil)
		fmt.Fprintf(os.Stderr, "Application initialization failed: %v\n", err)
		os.Exit(1)
	}

	application.Run()
}

// NewApplication wires models, services, controller and view into fyneApp
func NewApplication(ctx context.Context, fyneApp fyne.App, cfg config.Config, appLogger logger.Logger) (*Application, error) {
	catalog, err := conversion.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load unit catalog: %w", err)
	}

	appCtx, appCancel := context.WithCancel(ctx)

	initial := models.Light
	if cfg.DarkTheme {
		initial = models.Dark
	}

	// Initialize repositories/models
	history := models.NewHistoryRepository(cfg.HistorySize)
	themeState := models.NewThemeState(initial)

	// Initialize services
	conversionService := services.NewConversionService(catalog, history, appLogger)
	clipboardService := services.NewClipboardService(&services.SystemClipboard{}, appLogger)

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(config.DefaultWindowWidth, config.DefaultWindowHeight))
	window.CenterOnScreen()

	if res, err := icon.Resource(apptheme.PaletteFor(initial)); err != nil {
		appLogger.Warning("Application", "icon unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		fyneApp.SetIcon(res)
		window.SetIcon(res)
	}

	// Initialize MVC components
	mainController := controllers.NewMainController(
		appCtx, fyneApp,
		conversionService, clipboardService,
		history, themeState,
		cfg.HistorySize,
		appLogger,
	)
	mainView := views.NewMainView(window, conversionService.Groups(), apptheme.PaletteFor(initial))
	mainController.SetMainView(mainView)

	manager := shutdown.NewManager(appLogger)
	manager.Register(history)
	manager.Register(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		history:    history,
		themeState: themeState,
		shutdown:   manager,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	window.SetMainMenu(application.buildMainMenu())
	application.registerShortcuts()
	application.setupWindowEvents()

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":    config.Version,
		"commit":     config.GitCommit,
		"categories": len(catalog.Categories()),
		"theme":      initial.String(),
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	return application, nil
}

// Run shows the window and blocks in the fyne event loop
func (app *Application) Run() {
	app.shutdown.Listen(func() {
		fyne.Do(app.fyneApp.Quit)
	})

	app.logger.Info("Application", "starting UI", nil)
	app.window.ShowAndRun()

	app.initiateShutdown()
}

// setupWindowEvents configures window lifecycle events
func (app *Application) setupWindowEvents() {
	app.window.SetCloseIntercept(func() {
		app.logger.Info("Application", "window close requested", nil)
		app.quit()
	})
}

func (app *Application) quit() {
	app.initiateShutdown()
	app.fyneApp.Quit()
}

// initiateShutdown stops every registered component once
func (app *Application) initiateShutdown() {
	app.cancel()
	app.shutdown.Shutdown()
}
