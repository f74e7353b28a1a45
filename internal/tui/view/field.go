package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldStyles holds the styles used to draw the time field box.
type FieldStyles struct {
	Focused lipgloss.Style // box while editing
	Blurred lipgloss.Style // box while idle
	Label   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
}

// FieldViewState captures what the field box shows.
type FieldViewState struct {
	Label   string
	Input   string // rendered text input
	Focused bool
	Pattern string // placeholder pattern shown under the box
	Value   string // formatted committed value, empty to hide
	Err     string
}

// RenderField renders the labelled field box followed by its value line.
func RenderField(state FieldViewState, styles FieldStyles) string {
	box := styles.Blurred
	if state.Focused {
		box = styles.Focused
	}

	lines := []string{styles.Label.Render(state.Label)}
	lines = append(lines, box.Render(state.Input))

	switch {
	case state.Err != "":
		lines = append(lines, styles.Error.Render(state.Err))
	case state.Value != "":
		lines = append(lines, styles.Value.Render("= "+state.Value))
	default:
		lines = append(lines, styles.Label.Render(state.Pattern))
	}
	return strings.Join(lines, "\n")
}
