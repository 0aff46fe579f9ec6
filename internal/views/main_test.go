package views

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-converter/internal/conversion"
	"unit-converter/internal/models"
	apptheme "unit-converter/internal/theme"
)

func newTestView(t *testing.T) (*MainView, *conversion.Catalog) {
	t.Helper()
	app := test.NewTempApp(t)
	catalog, err := conversion.LoadCatalog()
	require.NoError(t, err)

	window := app.NewWindow("test")
	t.Cleanup(window.Close)
	return NewMainView(window, catalog.Groups(), apptheme.LightPalette), catalog
}

func TestStartsOnMenu(t *testing.T) {
	view, _ := newTestView(t)

	assert.Equal(t, ScreenMenu, view.CurrentScreen())
	assert.Nil(t, view.Converter())
	assert.Nil(t, view.BaseConverter())
	assert.Equal(t, "", view.ResultText())
	require.Len(t, view.body.Objects, 1)
	assert.Same(t, view.Menu().GetContainer(), view.body.Objects[0])
}

func TestMenuEventsReachHandlers(t *testing.T) {
	view, _ := newTestView(t)

	var category string
	base, toggled := false, false
	view.SetCategoryHandler(func(name string) { category = name })
	view.SetBaseConverterHandler(func() { base = true })
	view.SetThemeToggleHandler(func() { toggled = true })

	test.Tap(view.Menu().CategoryButton("Speed"))
	test.Tap(view.Menu().BaseConverterButton())
	test.Tap(view.Menu().ThemeButton())

	assert.Equal(t, "Speed", category)
	assert.True(t, base)
	assert.True(t, toggled)
}

func TestShowCategoryReplacesBody(t *testing.T) {
	view, catalog := newTestView(t)
	length, err := catalog.Category("Length")
	require.NoError(t, err)

	var requests []models.ConversionRequest
	back := 0
	view.SetConvertHandler(func(req models.ConversionRequest) { requests = append(requests, req) })
	view.SetBackHandler(func() { back++ })

	view.ShowCategory(length)
	assert.Equal(t, ScreenCategory, view.CurrentScreen())
	require.NotNil(t, view.Converter())
	require.Len(t, view.body.Objects, 1)

	test.Type(view.Converter().ValueEntry(), "2")
	test.Tap(view.Converter().ConvertButton())
	test.Tap(view.Converter().BackButton())

	require.Len(t, requests, 1)
	assert.Equal(t, "Length", requests[0].Category)
	assert.Equal(t, "2", requests[0].Input)
	assert.Equal(t, 1, back)
}

func TestReopeningCategoryStartsFresh(t *testing.T) {
	view, catalog := newTestView(t)
	length, err := catalog.Category("Length")
	require.NoError(t, err)

	view.ShowCategory(length)
	test.Type(view.Converter().ValueEntry(), "5")
	view.SetResult(models.ConversionResult{Category: "Length", Text: "Result: 500 Centimeter"})
	first := view.Converter()

	view.ShowMenu()
	view.ShowCategory(length)

	assert.NotSame(t, first, view.Converter())
	assert.Equal(t, "", view.Converter().ValueEntry().Text)
	assert.Equal(t, "", view.ResultText())
}

func TestSetResultRouting(t *testing.T) {
	view, catalog := newTestView(t)
	weight, err := catalog.Category("Weight")
	require.NoError(t, err)

	view.ShowCategory(weight)
	view.SetResult(models.ConversionResult{Category: "Length", Text: "stale"})
	assert.Equal(t, "", view.ResultText())

	view.SetResult(models.ConversionResult{Category: "Weight", Text: "Result: 1000 Gram"})
	assert.Equal(t, "Result: 1000 Gram", view.ResultText())

	view.ShowBaseConverter()
	assert.Equal(t, ScreenBase, view.CurrentScreen())
	assert.Nil(t, view.Converter())
	view.SetResult(models.ConversionResult{Category: "Base Converter", Text: "FF"})
	assert.Equal(t, "FF", view.ResultText())

	view.ShowMenu()
	view.SetResult(models.ConversionResult{Category: "Weight", Text: "ignored"})
	assert.Equal(t, "", view.ResultText())
}

func TestBaseConverterEvents(t *testing.T) {
	view, _ := newTestView(t)

	var got models.BaseRequest
	view.SetBaseConvertHandler(func(req models.BaseRequest) { got = req })
	view.ShowBaseConverter()

	test.Type(view.BaseConverter().NumberEntry(), "777")
	view.BaseConverter().FromSelect().SetSelected("8")
	view.BaseConverter().ToSelect().SetSelected("2")
	test.Tap(view.BaseConverter().ConvertButton())

	assert.Equal(t, models.BaseRequest{Input: "777", FromBase: 8, ToBase: 2}, got)
}

func TestCopyHandler(t *testing.T) {
	view, catalog := newTestView(t)
	length, err := catalog.Category("Length")
	require.NoError(t, err)

	copied := false
	view.SetCopyHandler(func() { copied = true })
	view.ShowCategory(length)
	view.SetResult(models.ConversionResult{Category: "Length", Text: "Result: 100 Centimeter"})
	test.Tap(view.Converter().CopyButton())

	assert.True(t, copied)
}

func TestUpdateHistoryAndStatus(t *testing.T) {
	view, _ := newTestView(t)

	view.UpdateStatus("Converted")
	view.UpdateHistory([]models.ConversionResult{
		{Category: "Length", Input: "1", From: "Mile", Text: "Result: 1.609 Kilometer"},
		{Category: "Length", Text: "Please enter a valid number", Failed: true},
	}, 7)

	assert.Equal(t, "Converted", view.StatusBar().GetStatus())
	assert.Equal(t, []string{
		"Length: 1 Mile → 1.609 Kilometer",
		"Length: Please enter a valid number",
	}, view.HistoryPanel().Entries())
}

func TestApplyPaletteReachesOpenScreen(t *testing.T) {
	view, _ := newTestView(t)

	view.ShowBaseConverter()
	view.ApplyPalette(models.Dark)
	assert.Equal(t, apptheme.DarkPalette, view.palette)

	view.ApplyPalette(models.Light)
	assert.Equal(t, apptheme.LightPalette, view.palette)
}

func TestDialogsDoNotPanic(t *testing.T) {
	view, _ := newTestView(t)

	assert.NotPanics(t, func() {
		view.ShowError(errors.New("clipboard unavailable"))
		view.ShowAbout()
	})
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "menu", ScreenMenu.String())
	assert.Equal(t, "category", ScreenCategory.String())
	assert.Equal(t, "base", ScreenBase.String())
}
