// Package console provides styled terminal output for lint diagnostics.
// Styles degrade to plain text when stdout is not a terminal or when
// NO_COLOR is set, so report output stays machine-greppable in CI logs.
package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Adaptive colors readable on both light and dark backgrounds.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD700"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

var colorEnabled = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))

var (
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	commandStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

func render(style lipgloss.Style, symbol, message string) string {
	text := symbol + " " + message
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// FormatErrorMessage formats an error message for terminal display.
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗", message)
}

// FormatSuccessMessage formats a success message for terminal display.
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓", message)
}

// FormatWarningMessage formats a warning message for terminal display.
func FormatWarningMessage(message string) string {
	return render(warningStyle, "⚠", message)
}

// FormatInfoMessage formats an informational message for terminal display.
func FormatInfoMessage(message string) string {
	return render(infoStyle, "ℹ", message)
}

// FormatCommandMessage formats a suggested command for terminal display.
func FormatCommandMessage(command string) string {
	if !colorEnabled {
		return command
	}
	return commandStyle.Render(command)
}

// FormatListItem formats a single lint finding as an indented bullet line.
func FormatListItem(message string) string {
	return "  - " + message
}

// FormatCountMessage renders a count with singular/plural unit selection,
// e.g. "1 error" / "3 errors".
func FormatCountMessage(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
