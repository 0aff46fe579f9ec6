package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"unit-converter/internal/config"
)

// aboutContent builds the body of the About dialog
func aboutContent() fyne.CanvasObject {
	title := widget.NewLabel(config.AppName)
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Converts values between units of twenty categories, " +
			"and whole numbers between bases 2, 8, 10 and 16.",
	)
	description.Wrapping = fyne.TextWrapWord

	shortcuts := widget.NewLabel(
		"Shortcuts:\n" +
			"• Enter converts\n" +
			"• Ctrl+T toggles the theme\n" +
			"• Ctrl+M or Escape returns to the menu\n" +
			"• Ctrl+Q quits",
	)
	shortcuts.Wrapping = fyne.TextWrapWord

	return container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(version),
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		shortcuts,
	)
}

// ShowAbout displays version and usage information
func (mv *MainView) ShowAbout() {
	d := dialog.NewCustom("About "+config.AppName, "Close", container.NewScroll(aboutContent()), mv.window)
	d.Resize(fyne.NewSize(400, 400))
	d.Show()
}
