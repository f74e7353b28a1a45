package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/microwave/internal/tui/view"
)

const (
	defaultWidth  = 60
	defaultHeight = 12
	maxHelpLines  = 2
)

// View renders the model.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	state := view.FieldViewState{
		Label:   "Time",
		Input:   m.field.View(),
		Focused: m.field.Focused(),
		Pattern: m.field.Placeholder(),
	}
	if m.committed || m.field.Text() != "" {
		state.Value = view.FormatSeconds(m.field.Seconds())
	}
	if m.err != nil {
		state.Err = m.err.Error()
	}

	body := strings.Join([]string{
		m.styles.TitleStyle.Render("microwave"),
		"",
		view.RenderField(state, m.styles.Field()),
	}, "\n")

	footer := view.RenderFooter(view.FooterViewState{
		Width:    width,
		Status:   m.statusMsg,
		IsError:  m.statusIsErr,
		Hints:    m.hints(),
		MaxLines: maxHelpLines,
	}, m.styles.Footer())

	footerH := lipgloss.Height(footer)
	bodyH := max(1, height-footerH)
	top := view.PlaceBox(width, bodyH, lipgloss.Center, lipgloss.Center, body, m.styles.colorBg)
	bottom := view.PadLinesWithBackground(footer, width, footerH, m.styles.colorBg)
	return top + "\n" + bottom
}
