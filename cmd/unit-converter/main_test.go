package main

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-converter/internal/config"
	"unit-converter/internal/logger"
	"unit-converter/internal/models"
	"unit-converter/internal/views"
)

func newTestApplication(t *testing.T, cfg config.Config) *Application {
	t.Helper()
	fyneApp := test.NewTempApp(t)

	application, err := NewApplication(context.Background(), fyneApp, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(application.initiateShutdown)
	return application
}

func defaultConfig() config.Config {
	return config.FromLookup(func(string) (string, bool) { return "", false })
}

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu %q has no item %q", menu.Label, label)
	return nil
}

func TestNewApplicationStartsOnMenu(t *testing.T) {
	application := newTestApplication(t, defaultConfig())

	assert.Equal(t, config.AppName, application.window.Title())
	assert.Equal(t, views.ScreenMenu, application.view.CurrentScreen())
	assert.Equal(t, models.Light, application.themeState.Variant())
}

func TestDarkThemeFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.DarkTheme = true

	application := newTestApplication(t, cfg)

	assert.Equal(t, models.Dark, application.themeState.Variant())
}

func TestMainMenuLayout(t *testing.T) {
	application := newTestApplication(t, defaultConfig())
	mainMenu := application.window.MainMenu()
	require.NotNil(t, mainMenu)
	require.Len(t, mainMenu.Items, 2)

	file, help := mainMenu.Items[0], mainMenu.Items[1]
	assert.Equal(t, "File", file.Label)
	assert.Equal(t, "Help", help.Label)

	findItem(t, file, "Copy Result")
	assert.True(t, findItem(t, file, "Quit").IsQuit)
	findItem(t, help, "About")
}

func TestMenuActions(t *testing.T) {
	application := newTestApplication(t, defaultConfig())
	file := application.window.MainMenu().Items[0]

	findItem(t, file, "Toggle Theme").Action()
	assert.Equal(t, models.Dark, application.themeState.Variant())

	application.controller.OpenCategory("Length")
	findItem(t, file, "Main Menu").Action()
	assert.Equal(t, views.ScreenMenu, application.view.CurrentScreen())
}

func TestEscapeReturnsToMenu(t *testing.T) {
	application := newTestApplication(t, defaultConfig())
	application.controller.OpenBaseConverter()
	require.Equal(t, views.ScreenBase, application.view.CurrentScreen())

	onKey := application.window.Canvas().OnTypedKey()
	require.NotNil(t, onKey)
	onKey(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.Equal(t, views.ScreenBase, application.view.CurrentScreen())

	onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, views.ScreenMenu, application.view.CurrentScreen())
}

func TestShutdownClearsHistory(t *testing.T) {
	application := newTestApplication(t, defaultConfig())
	application.controller.Convert(models.ConversionRequest{
		Category: "Length", Input: "1", From: "Mile", To: "Kilometer",
	})
	require.Equal(t, 1, application.history.Len())

	application.initiateShutdown()

	assert.Equal(t, 0, application.history.Len())
	assert.Error(t, application.ctx.Err())
}
