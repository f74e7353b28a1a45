// Package tui provides the terminal user interface for microwave.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/microwave/internal/tui/input"
	"github.com/javiermolinar/microwave/internal/tui/theme"
	"github.com/javiermolinar/microwave/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	TitleStyle lipgloss.Style

	// Field box
	FieldFocusedStyle lipgloss.Style
	FieldBlurredStyle lipgloss.Style
	FieldLabelStyle   lipgloss.Style
	FieldValueStyle   lipgloss.Style

	// Text input inside the box
	InputTextStyle        lipgloss.Style
	InputPlaceholderStyle lipgloss.Style
	InputCursorStyle      lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	HelpKeyStyle lipgloss.Style
	HelpStyle    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.colorBg = palette.Bg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	fieldBox := lipgloss.NewStyle().
		Background(palette.BgField).
		Padding(0, 1)
	s.FieldFocusedStyle = fieldBox.
		Border(lipgloss.ThickBorder()).
		BorderForeground(palette.Accent)
	s.FieldBlurredStyle = fieldBox.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.BorderBlurred)
	s.FieldLabelStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)
	s.FieldValueStyle = lipgloss.NewStyle().
		Foreground(palette.Success).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgField).
		Bold(true)
	s.InputPlaceholderStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.BgField)
	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(palette.Accent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Fg)
	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Error).
		Bold(true)
	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(palette.Accent)
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	return s
}

// TimeField returns the styles for the text input.
func (s *Styles) TimeField() input.TimeFieldStyles {
	return input.TimeFieldStyles{
		Text:        s.InputTextStyle,
		Placeholder: s.InputPlaceholderStyle,
		Cursor:      s.InputCursorStyle,
	}
}

// Field returns the styles for the field box.
func (s *Styles) Field() view.FieldStyles {
	return view.FieldStyles{
		Focused: s.FieldFocusedStyle,
		Blurred: s.FieldBlurredStyle,
		Label:   s.FieldLabelStyle,
		Value:   s.FieldValueStyle,
		Error:   s.ErrorStyle,
	}
}

// Footer returns the styles for the footer.
func (s *Styles) Footer() view.FooterStyles {
	return view.FooterStyles{
		Status: s.StatusStyle,
		Error:  s.ErrorStyle,
		Key:    s.HelpKeyStyle,
		Desc:   s.HelpStyle,
	}
}
