// Package style holds the lipgloss styles for dotman's terminal
// output. When stdout is not a terminal everything renders plain.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#F57F17", Dark: "#FFD54F"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	PathStyle    = lipgloss.NewStyle().Foreground(PathColor)
)

var isTerminal = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// render applies s to text, or passes it through untouched when output
// is not a terminal.
func render(s lipgloss.Style, text string) string {
	if !isTerminal {
		return text
	}
	return s.Render(text)
}

// Success renders text in the success style
func Success(text string) string { return render(SuccessStyle, text) }

// Warning renders text in the warning style
func Warning(text string) string { return render(WarningStyle, text) }

// Error renders text in the error style
func Error(text string) string { return render(ErrorStyle, text) }

// Muted renders text in the muted style
func Muted(text string) string { return render(MutedStyle, text) }

// Path renders a filesystem path
func Path(text string) string { return render(PathStyle, text) }
