package input

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microwave/internal/timefmt"
	"github.com/javiermolinar/microwave/internal/tui/commands"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(t *testing.T, f TimeField, keys string) TimeField {
	t.Helper()
	for _, r := range keys {
		f, _ = f.Update(keyRunes(string(r)))
	}
	return f
}

func newFocusedField(format timefmt.Format) TimeField {
	f := NewTimeField(format, TimeFieldStyles{})
	f.Focus()
	return f
}

func TestTimeFieldTyping(t *testing.T) {
	f := newFocusedField(timefmt.Format{})

	steps := []struct {
		key  string
		want string
	}{
		{key: "1", want: "0:01"},
		{key: "3", want: "0:13"},
		{key: "0", want: "1:30"},
	}
	for _, step := range steps {
		f, _ = f.Update(keyRunes(step.key))
		if f.Text() != step.want {
			t.Fatalf("after %q: text = %q, want %q", step.key, f.Text(), step.want)
		}
	}
	if f.Seconds() != 90 {
		t.Errorf("Seconds() = %v, want 90", f.Seconds())
	}
}

func TestTimeFieldIgnoresNonDigits(t *testing.T) {
	f := newFocusedField(timefmt.Format{})
	f = typeKeys(t, f, "5x:")

	if f.Text() != "0:05" {
		t.Errorf("text = %q, want %q", f.Text(), "0:05")
	}
}

func TestTimeFieldBackspace(t *testing.T) {
	f := newFocusedField(timefmt.Format{})
	f = typeKeys(t, f, "130")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Text() != "0:13" {
		t.Errorf("text = %q, want %q", f.Text(), "0:13")
	}
	if f.Seconds() != 13 {
		t.Errorf("Seconds() = %v, want 13", f.Seconds())
	}
}

func TestTimeFieldEnterCommits(t *testing.T) {
	f := newFocusedField(timefmt.Format{ShowHours: true})
	f = typeKeys(t, f, "10203")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.Focused() {
		t.Error("field should blur when editing ends")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(commands.CommittedMsg)
	if !ok {
		t.Fatalf("expected CommittedMsg, got %T", cmd())
	}
	if msg.Text != "1:02:03" || msg.Seconds != 3723 {
		t.Errorf("unexpected commit: %+v", msg)
	}
}

func TestTimeFieldEmptyCommitsPlaceholder(t *testing.T) {
	f := newFocusedField(timefmt.Format{ShowHundredths: true})

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyTab})
	msg, ok := cmd().(commands.CommittedMsg)
	if !ok {
		t.Fatalf("expected CommittedMsg, got %T", cmd())
	}
	if msg.Text != "0:00.00" || msg.Seconds != 0 {
		t.Errorf("unexpected commit: %+v", msg)
	}
}

func TestTimeFieldEscClears(t *testing.T) {
	f := newFocusedField(timefmt.Format{})
	f = typeKeys(t, f, "45")

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if f.Text() != "" {
		t.Errorf("text = %q, want empty", f.Text())
	}
	if f.Seconds() != 0 {
		t.Errorf("Seconds() = %v, want 0", f.Seconds())
	}
	if !f.Focused() {
		t.Error("esc should keep editing")
	}
}

func TestTimeFieldBlurredIgnoresKeys(t *testing.T) {
	f := NewTimeField(timefmt.Format{}, TimeFieldStyles{})
	f, cmd := f.Update(keyRunes("7"))

	if f.Text() != "" || cmd != nil {
		t.Errorf("blurred field handled input: text %q, cmd %v", f.Text(), cmd != nil)
	}
}

func TestTimeFieldSetFormat(t *testing.T) {
	f := newFocusedField(timefmt.Format{})
	f = typeKeys(t, f, "130")

	f.SetFormat(timefmt.Format{ShowHundredths: true})
	if f.Text() != "1:30.00" {
		t.Errorf("text = %q, want %q", f.Text(), "1:30.00")
	}
	if f.Placeholder() != "0:00.00" {
		t.Errorf("placeholder = %q, want %q", f.Placeholder(), "0:00.00")
	}
	if f.Seconds() != 90 {
		t.Errorf("Seconds() = %v, want 90", f.Seconds())
	}
	if !f.Format().ShowHundredths {
		t.Error("format not applied")
	}

	empty := newFocusedField(timefmt.Format{})
	empty.SetFormat(timefmt.Format{ShowHours: true})
	if empty.Text() != "" {
		t.Errorf("empty field text = %q, want empty", empty.Text())
	}
}

func TestTimeFieldSetSeconds(t *testing.T) {
	f := NewTimeField(timefmt.Format{ShowHours: true}, TimeFieldStyles{})
	f.SetSeconds(3723)

	if f.Text() != "1:02:03" {
		t.Errorf("text = %q, want %q", f.Text(), "1:02:03")
	}
}

func TestTimeFieldEndEditingError(t *testing.T) {
	f := newFocusedField(timefmt.Format{})
	f.input.SetValue("1:2:3:4")

	msg, ok := f.EndEditing()().(commands.ErrMsg)
	if !ok {
		t.Fatal("expected ErrMsg")
	}
	if !errors.Is(msg.Err, timefmt.ErrMalformedDuration) {
		t.Errorf("error = %v, want ErrMalformedDuration", msg.Err)
	}
}
