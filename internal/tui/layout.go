package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/nador/internal/tui/styles"
)

// Layout proportions
const (
	InspectorPercent  = 35
	MinInspectorWidth = 30
	MinListWidth      = 40

	// Store name row and status row
	HeaderHeight    = 1
	StatusBarHeight = 1
)

// StoreName is shown in the header
const StoreName = "Nador Store"

// screenLayout holds calculated sizes for the View
type screenLayout struct {
	bodyHeight     int
	listWidth      int
	inspectorWidth int // 0 if not shown
}

// calculateLayout computes the body area left over by the chrome. The
// category bar can wrap, so its height is measured rather than fixed.
func (m Model) calculateLayout() screenLayout {
	chrome := HeaderHeight + StatusBarHeight +
		lipgloss.Height(m.Categories.View()) +
		lipgloss.Height(m.Help.View(m.Keys))

	l := screenLayout{
		bodyHeight: max(m.Height-chrome, 3),
		listWidth:  m.Width,
	}
	if m.ShowInspector && m.Width >= MinListWidth+MinInspectorWidth {
		l.inspectorWidth = max(m.Width*InspectorPercent/100, MinInspectorWidth)
		l.listWidth = m.Width - l.inspectorWidth
	}
	return l
}

func (m Model) searchWidth() int {
	return max(m.Width-lipgloss.Width(styles.StoreNameStyle.Render(StoreName))-1, 10)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.Help.Width = m.Width
	m.Categories.SetWidth(m.Width)
	m.Search.SetWidth(m.searchWidth())

	l := m.calculateLayout()
	m.Table.SetSize(l.listWidth, l.bodyHeight)
	m.Grid.SetSize(l.listWidth, l.bodyHeight)
	m.Inspector.SetSize(l.inspectorWidth, l.bodyHeight)
	m.CategoryPicker.SetSize(m.Width, l.bodyHeight)
}
