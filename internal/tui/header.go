package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termdrills/internal/config"
)

// HeaderModel renders the top bar: drill title and version.
type HeaderModel struct {
	title   string
	version string
	width   int
}

// NewHeaderModel creates the header for program.
func NewHeaderModel(program config.Program, version string) HeaderModel {
	title := "Fibonacci Sequence"
	if program == config.ProgramFrequency {
		title = "Word Frequencies"
	}
	return HeaderModel{title: title, version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	row := titleStyle.Render(h.title)
	if h.version != "" && h.version != "dev" {
		row += versionStyle.Render(" | " + h.version)
	}
	if h.width > 0 {
		gap := h.width - 2 - lipgloss.Width(row)
		if gap > 0 {
			row += spaces(gap)
		}
		return headerStyle.Width(h.width).Render(row)
	}
	return headerStyle.Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
