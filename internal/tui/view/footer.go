package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyHint is one entry of the help line.
type KeyHint struct {
	Key  string
	Desc string
}

// FooterStyles holds the styles used by the footer.
type FooterStyles struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Key    lipgloss.Style
	Desc   lipgloss.Style
}

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width    int
	Status   string
	IsError  bool
	Hints    []KeyHint
	MaxLines int
}

// RenderFooter renders the status line and the wrapped help lines.
func RenderFooter(state FooterViewState, styles FooterStyles) string {
	statusStyle := styles.Status
	if state.IsError {
		statusStyle = styles.Error
	}
	lines := []string{TruncateLine(statusStyle.Render(state.Status), state.Width, "…")}

	help := HelpLines(state.Hints, state.Width)
	if state.MaxLines > 0 && len(help) > state.MaxLines {
		help = help[:state.MaxLines]
		last := len(help) - 1
		help[last] = TruncateLine(help[last]+" …", state.Width, "…")
	}
	for _, line := range help {
		lines = append(lines, renderHintLine(line, styles))
	}
	return strings.Join(lines, "\n")
}

// HelpLines lays the hints out as plain "key desc" pairs wrapped to width.
func HelpLines(hints []KeyHint, width int) []string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return WrapTextToWidths(strings.Join(parts, " • "), width, width)
}

// renderHintLine styles the first word of each "key desc" pair as a key.
func renderHintLine(line string, styles FooterStyles) string {
	segments := strings.Split(line, " • ")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		key, desc, found := strings.Cut(seg, " ")
		if !found {
			out = append(out, styles.Desc.Render(seg))
			continue
		}
		out = append(out, styles.Key.Render(key)+" "+styles.Desc.Render(desc))
	}
	return strings.Join(out, styles.Desc.Render(" • "))
}
