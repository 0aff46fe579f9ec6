package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// buildMainMenu creates the File and Help menus
func (app *Application) buildMainMenu() *fyne.MainMenu {
	toggleItem := fyne.NewMenuItem("Toggle Theme", func() {
		app.controller.ToggleTheme()
	})
	toggleItem.Shortcut = themeShortcut

	copyItem := fyne.NewMenuItem("Copy Result", func() {
		_ = app.controller.CopyResult()
	})

	menuItem := fyne.NewMenuItem("Main Menu", app.controller.ShowMenu)
	menuItem.Shortcut = menuShortcut

	quitItem := fyne.NewMenuItem("Quit", app.quit)
	quitItem.IsQuit = true
	quitItem.Shortcut = quitShortcut

	fileMenu := fyne.NewMenu("File",
		menuItem,
		toggleItem,
		copyItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", app.controller.ShowAbout),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

var (
	quitShortcut = &desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}
	themeShortcut = &desktop.CustomShortcut{
		KeyName:  fyne.KeyT,
		Modifier: fyne.KeyModifierControl,
	}
	menuShortcut = &desktop.CustomShortcut{
		KeyName:  fyne.KeyM,
		Modifier: fyne.KeyModifierControl,
	}
)

// registerShortcuts binds the keyboard shortcuts on the window canvas
func (app *Application) registerShortcuts() {
	canvas := app.window.Canvas()

	canvas.AddShortcut(quitShortcut, func(fyne.Shortcut) {
		app.logger.Debug("Application", "quit shortcut", nil)
		app.quit()
	})
	canvas.AddShortcut(themeShortcut, func(fyne.Shortcut) {
		app.controller.ToggleTheme()
	})
	canvas.AddShortcut(menuShortcut, func(fyne.Shortcut) {
		app.controller.ShowMenu()
	})

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			app.controller.ShowMenu()
		}
	})
}
