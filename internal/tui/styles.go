package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termdrills/internal/ui"
)

// Style variables for the drill screens.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	questionStyle  lipgloss.Style
	rejectionStyle lipgloss.Style
	resultStyle    lipgloss.Style
	captionStyle   lipgloss.Style
	farewellStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	questionStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	rejectionStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	captionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	farewellStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
}
