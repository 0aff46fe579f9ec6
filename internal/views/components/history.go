package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HistoryPanel lists the most recent conversions, newest first
type HistoryPanel struct {
	container *fyne.Container
	list      *widget.List
	entries   []string
	empty     *widget.Label
}

// NewHistoryPanel creates a new history panel
func NewHistoryPanel() *HistoryPanel {
	hp := &HistoryPanel{}
	hp.createComponents()
	hp.buildLayout()
	return hp
}

func (hp *HistoryPanel) createComponents() {
	hp.list = widget.NewList(
		func() int { return len(hp.entries) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(hp.entries[id])
		},
	)
	hp.empty = widget.NewLabel("No conversions yet")
}

func (hp *HistoryPanel) buildLayout() {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Recent", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		hp.empty,
	)
	hp.container = container.NewBorder(header, nil, nil, nil, hp.list)
}

// SetEntries replaces the listed lines
func (hp *HistoryPanel) SetEntries(entries []string) {
	hp.entries = append(hp.entries[:0], entries...)
	if len(hp.entries) == 0 {
		hp.empty.Show()
	} else {
		hp.empty.Hide()
	}
	hp.list.Refresh()
}

// Entries returns the listed lines
func (hp *HistoryPanel) Entries() []string {
	return append([]string(nil), hp.entries...)
}

// GetContainer returns the history panel container
func (hp *HistoryPanel) GetContainer() *fyne.Container {
	return hp.container
}
