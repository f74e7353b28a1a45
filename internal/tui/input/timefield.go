// Package input provides the keypad-style time entry component.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/microwave/internal/timefmt"
	"github.com/javiermolinar/microwave/internal/tui/commands"
)

// TimeFieldStyles configures how the field text is drawn.
type TimeFieldStyles struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
}

// TimeField wraps a textinput so every edit is reformatted into a time
// string and editing ends with a parsed value.
type TimeField struct {
	field *timefmt.Field
	input textinput.Model
}

// NewTimeField creates an empty, blurred field using format f.
func NewTimeField(f timefmt.Format, styles TimeFieldStyles) TimeField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = timefmt.Placeholder(f)
	ti.Width = len(timefmt.Placeholder(timefmt.Format{ShowHours: true, ShowHundredths: true})) + 1
	ti.TextStyle = styles.Text
	ti.PlaceholderStyle = styles.Placeholder
	ti.Cursor.Style = styles.Cursor
	ti.Cursor.TextStyle = styles.Text

	return TimeField{
		field: timefmt.NewField(f),
		input: ti,
	}
}

// Focus starts an edit.
func (t *TimeField) Focus() tea.Cmd {
	t.input.CursorEnd()
	return t.input.Focus()
}

// Blur stops editing without committing.
func (t *TimeField) Blur() {
	t.input.Blur()
}

// Focused reports whether the field is being edited.
func (t TimeField) Focused() bool {
	return t.input.Focused()
}

// Text returns the displayed text.
func (t TimeField) Text() string {
	return t.input.Value()
}

// Placeholder returns the empty-field hint.
func (t TimeField) Placeholder() string {
	return t.field.Placeholder()
}

// Seconds returns the current value.
func (t TimeField) Seconds() float64 {
	return t.field.Value()
}

// Format returns the display format.
func (t TimeField) Format() timefmt.Format {
	return t.field.Format()
}

// SetFormat switches the display format and re-renders the current value.
// An empty field stays empty.
func (t *TimeField) SetFormat(f timefmt.Format) {
	t.field.SetFormat(f)
	t.input.Placeholder = timefmt.Placeholder(f)
	if t.input.Value() != "" {
		t.input.SetValue(t.field.Display())
		t.input.CursorEnd()
	}
}

// SetSeconds replaces the value and its display.
func (t *TimeField) SetSeconds(v float64) {
	t.input.SetValue(t.field.SetValue(v))
	t.input.CursorEnd()
}

// Clear empties the field and resets the value to zero.
func (t *TimeField) Clear() {
	t.field.SetValue(0)
	t.input.SetValue("")
}

// EndEditing blurs the field and parses its text. An empty field parses as
// its placeholder.
func (t *TimeField) EndEditing() tea.Cmd {
	t.input.Blur()
	text := t.input.Value()
	if text == "" {
		text = t.field.Placeholder()
	}
	v, err := t.field.OnEditingEnded(text)
	if err != nil {
		return commands.Failed("reading time", err)
	}
	return commands.Committed(text, v)
}

// Update handles key input while focused. Enter and tab end editing, esc
// clears; everything else goes to the text input and is reformatted.
func (t TimeField) Update(msg tea.Msg) (TimeField, tea.Cmd) {
	if !t.input.Focused() {
		return t, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "tab":
			return t, t.EndEditing()
		case "esc":
			t.Clear()
			return t, nil
		}
	}

	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before {
		display, _ := t.field.OnTextChanged(after)
		t.input.SetValue(display)
		t.input.CursorEnd()
	}
	return t, cmd
}

// View renders the text input.
func (t TimeField) View() string {
	return t.input.View()
}
