// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Node event components
	Element    lipgloss.Style
	Text       lipgloss.Style
	EndElement lipgloss.Style
	Name       lipgloss.Style
	AttrKey    lipgloss.Style
	AttrValue  lipgloss.Style
	Depth      lipgloss.Style

	// File components
	FilePath lipgloss.Style
	Location lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Element:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		EndElement: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Name:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		AttrKey:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		AttrValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Depth:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Element:      plain,
		Text:         plain,
		EndElement:   plain,
		Name:         plain,
		AttrKey:      plain,
		AttrValue:    plain,
		Depth:        plain,
		FilePath:     plain,
		Location:     plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled resolves a color mode ("auto", "always", "never")
// against the output writer. In auto mode color is enabled only when the
// writer is a terminal.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
