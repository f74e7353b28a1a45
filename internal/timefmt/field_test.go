package timefmt

import (
	"errors"
	"testing"
)

func TestFieldOnTextChanged(t *testing.T) {
	f := NewField(Format{})

	display, value := f.OnTextChanged("130")
	if display != "1:30" {
		t.Errorf("display = %q, want %q", display, "1:30")
	}
	if value != 90 {
		t.Errorf("value = %v, want 90", value)
	}
	if f.Value() != 90 {
		t.Errorf("Value() = %v, want 90", f.Value())
	}
}

func TestFieldOnEditingEnded(t *testing.T) {
	f := NewField(Format{ShowHours: true})

	got, err := f.OnEditingEnded("1:02:03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3723 {
		t.Errorf("value = %v, want 3723", got)
	}

	got, err = f.OnEditingEnded("1:2:3:4")
	if !errors.Is(err, ErrMalformedDuration) {
		t.Fatalf("error = %v, want ErrMalformedDuration", err)
	}
	if got != 3723 || f.Value() != 3723 {
		t.Errorf("value after error = %v (stored %v), want previous 3723", got, f.Value())
	}
}

func TestFieldFormatChanges(t *testing.T) {
	f := NewField(Format{})
	if f.Placeholder() != "0:00" {
		t.Errorf("Placeholder() = %q, want %q", f.Placeholder(), "0:00")
	}

	f.OnTextChanged("2:03")
	if f.Value() != 123 {
		t.Fatalf("Value() = %v, want 123", f.Value())
	}

	f.SetShowHours(true)
	if !f.Format().ShowHours {
		t.Fatal("ShowHours not set")
	}
	if f.Placeholder() != "0:00:00" {
		t.Errorf("Placeholder() = %q, want %q", f.Placeholder(), "0:00:00")
	}
	if got := f.Display(); got != "0:02:03" {
		t.Errorf("Display() = %q, want %q", got, "0:02:03")
	}

	f.SetShowHundredths(true)
	if got := f.Display(); got != "0:02:03.00" {
		t.Errorf("Display() = %q, want %q", got, "0:02:03.00")
	}

	f.SetFormat(Format{})
	if f.Format() != (Format{}) {
		t.Errorf("Format() = %+v, want zero", f.Format())
	}
}

func TestFieldSetValue(t *testing.T) {
	f := NewField(Format{ShowHundredths: true})
	if got := f.SetValue(5.5); got != "0:05.50" {
		t.Errorf("SetValue display = %q, want %q", got, "0:05.50")
	}
	if f.Value() != 5.5 {
		t.Errorf("Value() = %v, want 5.5", f.Value())
	}

	f = NewField(Format{})
	f.SetValue(360000)
	if f.Value() != 0 {
		t.Errorf("Value() after overflow = %v, want value of the clamped display", f.Value())
	}
}
