package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds lipgloss styles for human-readable reports.
type Styles struct {
	Title   lipgloss.Style
	Rule    lipgloss.Style
	Key     lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns colored styles when color is true and plain ones otherwise.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Rule: plain, Key: plain, Success: plain, Warning: plain, Error: plain, Muted: plain}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),             // Gray
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),            // Cyan
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),            // Yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// Plain is the uncolored style set used for files, pipes and tests.
func Plain() Styles { return NewStyles(false) }

// ResolveColorMode determines whether to color output. colorMode accepts
// "never", "always" or "auto" (use isTTY).
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
