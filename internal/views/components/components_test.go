package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-converter/internal/conversion"
	"unit-converter/internal/models"
	apptheme "unit-converter/internal/theme"
)

func loadCategory(t *testing.T, name string) *conversion.Category {
	t.Helper()
	catalog, err := conversion.LoadCatalog()
	require.NoError(t, err)
	category, err := catalog.Category(name)
	require.NoError(t, err)
	return category
}

func TestMenuButtonsReportCategory(t *testing.T) {
	test.NewTempApp(t)

	catalog, err := conversion.LoadCatalog()
	require.NoError(t, err)
	menu := NewMenu(catalog.Groups(), apptheme.LightPalette)

	var opened []string
	menu.SetCategoryHandler(func(name string) { opened = append(opened, name) })
	baseOpened, toggled := false, false
	menu.SetBaseConverterHandler(func() { baseOpened = true })
	menu.SetThemeToggleHandler(func() { toggled = true })

	for _, group := range catalog.Groups() {
		for _, name := range group.Categories {
			button := menu.CategoryButton(name)
			require.NotNil(t, button, name)
			assert.Equal(t, widget.HighImportance, button.Importance)
			test.Tap(button)
		}
	}
	test.Tap(menu.BaseConverterButton())
	test.Tap(menu.ThemeButton())

	assert.Len(t, opened, 20)
	assert.Equal(t, "Length", opened[0])
	assert.True(t, baseOpened)
	assert.True(t, toggled)
	assert.Nil(t, menu.CategoryButton("Currency"))
}

func TestMenuApplyPalette(t *testing.T) {
	test.NewTempApp(t)

	catalog, err := conversion.LoadCatalog()
	require.NoError(t, err)
	menu := NewMenu(catalog.Groups(), apptheme.LightPalette)

	menu.ApplyPalette(apptheme.DarkPalette)
	assert.Equal(t, apptheme.DarkPalette.Title, menu.title.Color)
	for _, card := range menu.cards {
		assert.Equal(t, apptheme.DarkPalette.Frame, card.Fill())
	}
}

func TestConverterScreenDefaultsAndRequest(t *testing.T) {
	test.NewTempApp(t)

	screen := NewConverterScreen(loadCategory(t, "Length"), apptheme.LightPalette)
	assert.Equal(t, "Length Converter", screen.title.Text)
	assert.Equal(t, "Meter", screen.FromSelect().Selected)
	assert.Equal(t, "Centimeter", screen.ToSelect().Selected)
	assert.Equal(t, 8, len(screen.FromSelect().Options))

	var got []models.ConversionRequest
	screen.SetConvertHandler(func(req models.ConversionRequest) { got = append(got, req) })

	test.Type(screen.ValueEntry(), "1")
	screen.FromSelect().SetSelected("Mile")
	screen.ToSelect().SetSelected("Kilometer")
	test.Tap(screen.ConvertButton())

	require.Len(t, got, 1)
	assert.Equal(t, models.ConversionRequest{
		Category: "Length",
		Input:    "1",
		From:     "Mile",
		To:       "Kilometer",
	}, got[0])
}

func TestConverterScreenEnterSubmits(t *testing.T) {
	test.NewTempApp(t)

	screen := NewConverterScreen(loadCategory(t, "Temperature"), apptheme.LightPalette)
	submitted := 0
	screen.SetConvertHandler(func(models.ConversionRequest) { submitted++ })

	test.Type(screen.ValueEntry(), "100")
	screen.ValueEntry().TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, 1, submitted)
}

func TestConverterScreenResult(t *testing.T) {
	test.NewTempApp(t)

	screen := NewConverterScreen(loadCategory(t, "Length"), apptheme.LightPalette)
	assert.True(t, screen.CopyButton().Disabled())

	screen.SetResult(models.ConversionResult{Text: "Result: 1.609 Kilometer"})
	assert.Equal(t, "Result: 1.609 Kilometer", screen.ResultText())
	assert.False(t, screen.CopyButton().Disabled())

	screen.SetResult(models.ConversionResult{Text: "Please enter a valid number", Failed: true})
	assert.Equal(t, "Please enter a valid number", screen.ResultText())
	assert.True(t, screen.CopyButton().Disabled())
}

func TestConverterScreenButtons(t *testing.T) {
	test.NewTempApp(t)

	screen := NewConverterScreen(loadCategory(t, "Length"), apptheme.LightPalette)
	back, copied := false, false
	screen.SetBackHandler(func() { back = true })
	screen.SetCopyHandler(func() { copied = true })

	test.Tap(screen.BackButton())
	screen.SetResult(models.ConversionResult{Text: "Result: 100 Centimeter"})
	test.Tap(screen.CopyButton())

	assert.True(t, back)
	assert.True(t, copied)
}

func TestBaseScreenRequest(t *testing.T) {
	test.NewTempApp(t)

	screen := NewBaseScreen(apptheme.LightPalette)
	assert.Equal(t, []string{"2", "8", "10", "16"}, screen.FromSelect().Options)
	assert.Equal(t, "10", screen.FromSelect().Selected)
	assert.Equal(t, "16", screen.ToSelect().Selected)

	var got models.BaseRequest
	screen.SetConvertHandler(func(req models.BaseRequest) { got = req })

	test.Type(screen.NumberEntry(), "255")
	test.Tap(screen.ConvertButton())

	assert.Equal(t, models.BaseRequest{Input: "255", FromBase: 10, ToBase: 16}, got)

	screen.SetResult(models.ConversionResult{Text: "FF"})
	assert.Equal(t, "FF", screen.ResultText())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())

	sb.SetStatus("Copied")
	sb.SetHistoryCount(3)
	sb.SetThemeInfo("dark")
	assert.Equal(t, "Copied", sb.GetStatus())
	assert.Equal(t, "History: 3", sb.historyInfo.Text)
	assert.Equal(t, "Theme: dark", sb.themeInfo.Text)

	sb.Reset()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "History: 0", sb.historyInfo.Text)
}

func TestHistoryPanel(t *testing.T) {
	test.NewTempApp(t)

	hp := NewHistoryPanel()
	assert.True(t, hp.empty.Visible())

	hp.SetEntries([]string{"b", "a"})
	assert.Equal(t, []string{"b", "a"}, hp.Entries())
	assert.False(t, hp.empty.Visible())
	assert.Equal(t, 2, hp.list.Length())

	hp.SetEntries(nil)
	assert.Empty(t, hp.Entries())
	assert.True(t, hp.empty.Visible())
}

func TestCardSetFill(t *testing.T) {
	test.NewTempApp(t)

	card := NewCard(widget.NewLabel("x"), apptheme.LightPalette.Frame)
	card.SetFill(apptheme.DarkPalette.Frame)

	assert.Equal(t, apptheme.DarkPalette.Frame, card.Fill())
	assert.Equal(t, apptheme.DarkPalette.Frame, card.bg.FillColor)
}
