// Package ui provides theme and color support for the full-screen interface.
// Line-mode output is plain text and never coloured; only the tui package
// consumes these palettes.
package ui
