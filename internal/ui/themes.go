package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines lipgloss-compatible colors for the TUI screens.
// Each field is a lipgloss.TerminalColor suitable for use with
// lipgloss.Style.Foreground() and Background().
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Text is the default foreground.
	Text lipgloss.TerminalColor
	// Border frames panels.
	Border lipgloss.TerminalColor
	// Accent highlights titles and prompts.
	Accent lipgloss.TerminalColor
	// Success marks computed results.
	Success lipgloss.TerminalColor
	// Warning marks rejection messages.
	Warning lipgloss.TerminalColor
	// Error marks failures.
	Error lipgloss.TerminalColor
	// Dim is used for help text and separators.
	Dim lipgloss.TerminalColor
}

var (
	// DarkTheme is the orange-dominant palette for dark terminals.
	DarkTheme = Theme{
		Name:    "dark",
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightTheme uses darker tones for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Text:    lipgloss.Color("#202020"),
		Border:  lipgloss.Color("#005FAF"),
		Accent:  lipgloss.Color("#005FD7"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#585858"),
	}

	// NoColorTheme disables all colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTheme = Theme{
		Name:    "none",
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the names accepted by SetTheme.
var ThemeNames = []string{"dark", "light", "none"}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Unknown names default to the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = themeByName(name)
}

func themeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag, the requested
// theme name and the environment. It respects the NO_COLOR environment
// variable (https://no-color.org/): if noColor is true or NO_COLOR is set,
// colors are disabled regardless of name.
func InitTheme(name string, noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = themeByName(name)
}
