// Package ui holds the terminal presentation for the CLI: the colour styles
// used for status lines and the markdown renderer behind --show.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colours.
var (
	ColorInfo    = lipgloss.Color("12")
	ColorSuccess = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorError   = lipgloss.Color("9")
	ColorMuted   = lipgloss.Color("8")
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	nameStyle    = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
)

// Info styles an in-progress status line.
func Info(s string) string { return infoStyle.Render(s) }

// Success styles a completed status line.
func Success(s string) string { return successStyle.Render(s) }

// Warning styles a notice.
func Warning(s string) string { return warningStyle.Render(s) }

// Error styles a failure line.
func Error(s string) string { return errorStyle.Render(s) }

// Muted styles hints and totals.
func Muted(s string) string { return mutedStyle.Render(s) }

// Name highlights a prompt or file name.
func Name(s string) string { return nameStyle.Render(s) }
