package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microwave/internal/textutil"
	"github.com/javiermolinar/microwave/internal/timefmt"
	"github.com/javiermolinar/microwave/internal/tui/commands"
	"github.com/javiermolinar/microwave/internal/tui/view"
)

var editingHints = []view.KeyHint{
	{Key: "0-9", Desc: "type"},
	{Key: "backspace", Desc: "delete"},
	{Key: "enter", Desc: "done"},
	{Key: "esc", Desc: "clear"},
	{Key: "ctrl+o", Desc: "hours"},
	{Key: "ctrl+t", Desc: "hundredths"},
	{Key: "ctrl+c", Desc: "quit"},
}

var idleHints = []view.KeyHint{
	{Key: "e", Desc: "edit"},
	{Key: "y", Desc: "copy seconds"},
	{Key: "ctrl+o", Desc: "hours"},
	{Key: "ctrl+t", Desc: "hundredths"},
	{Key: "q", Desc: "quit"},
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.field.Focused())

	// Global keys (work while editing and idle)
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+o":
		f := m.field.Format()
		f.ShowHours = !f.ShowHours
		return m.setFormat(f)
	case "ctrl+t":
		f := m.field.Format()
		f.ShowHundredths = !f.ShowHundredths
		return m.setFormat(f)
	}

	if m.field.Focused() {
		return m.handleEditingKeys(msg)
	}
	return m.handleIdleKeys(msg)
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.field.Text()
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	if after := m.field.Text(); after != before {
		LogTextChanged(before, after, m.field.Seconds())
		m.err = nil
	}
	return m, cmd
}

func (m Model) handleIdleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "y":
		return m, commands.CopyToClipboard(strconv.FormatFloat(m.field.Seconds(), 'f', -1, 64))
	case "e", "enter":
		return m, m.field.Focus()
	}

	// Typing a digit starts a new edit with that digit.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && textutil.IsDigit(msg.Runes[0]) {
		focus := m.field.Focus()
		updated, cmd := m.handleEditingKeys(msg)
		return updated, tea.Batch(focus, cmd)
	}
	return m, nil
}

func (m Model) setFormat(f timefmt.Format) (tea.Model, tea.Cmd) {
	from := m.field.Format()
	m.field.SetFormat(f)
	LogFormatToggled(from, f)
	return m, commands.Status("Format " + f.String())
}

func (m Model) hints() []view.KeyHint {
	if m.field.Focused() {
		return editingHints
	}
	return idleHints
}
