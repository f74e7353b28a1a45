package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microwave/internal/tui/commands"
	"github.com/javiermolinar/microwave/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.CommittedMsg:
		LogEditingEnded(msg.Text, msg.Seconds)
		m.committed = true
		m.err = nil
		return m.setStatus(fmt.Sprintf("Committed %s (%s)", view.FormatSeconds(msg.Seconds), view.FormatHuman(msg.Seconds)), false)

	case commands.CopiedMsg:
		return m.setStatus("Copied "+msg.Text, false)

	case commands.ErrMsg:
		LogError("update", msg.Err)
		m.err = msg.Err
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input messages
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m Model) setStatus(msg string, isErr bool) (Model, tea.Cmd) {
	d := statusDuration
	if isErr {
		d = errorDuration
	}
	m.statusMsg = msg
	m.statusIsErr = isErr
	m.statusTime = time.Now().Add(d)
	return m, commands.ClearStatusAfter(d)
}
