// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CommittedMsg is sent when editing ends with a value that parsed.
type CommittedMsg struct {
	Text    string
	Seconds float64
}

// CopiedMsg is sent after a value was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Committed reports a committed field value.
func Committed(text string, seconds float64) tea.Cmd {
	return func() tea.Msg {
		return CommittedMsg{Text: text, Seconds: seconds}
	}
}

// Failed reports err, wrapped with context.
func Failed(context string, err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: fmt.Errorf("%s: %w", context, err)}
	}
}

// Status shows msg in the status line.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line once d has elapsed.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Text: text}
	}
}
