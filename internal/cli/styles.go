package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

// Styles renders terminal output. Styling is applied only when the writer
// is a terminal.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	color bool
}

// NewStyles returns styles for output written to w.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Warning: lipgloss.NewStyle().Foreground(colorWarning),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		color:   IsTerminal(w),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render applies style to text when color output is enabled.
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// Status formats a one-line result marker for a file.
func (s *Styles) Status(ok bool, text string) string {
	if ok {
		return s.Render(s.Success, "✓") + " " + text
	}
	return s.Render(s.Error, "✗") + " " + text
}
