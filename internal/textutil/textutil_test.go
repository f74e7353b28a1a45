package textutil

import "testing"

func TestFilterDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "mixed", input: "1a2b3", want: "123"},
		{name: "punctuated", input: "1:02:03.45", want: "1020345"},
		{name: "whitespace", input: " 4 5 ", want: "45"},
		{name: "no digits", input: "abc:.", want: ""},
		{name: "non ascii digits dropped", input: "1٣2", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDigits(tt.input)
			if got != tt.want {
				t.Errorf("FilterDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		if !IsDigit(r) {
			t.Errorf("IsDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "a:./ -９" {
		if IsDigit(r) {
			t.Errorf("IsDigit(%q) = true, want false", r)
		}
	}
}

func TestSubstringHelpers(t *testing.T) {
	s := "0130"

	if got := Length("héllo"); got != 5 {
		t.Errorf("Length = %d, want 5", got)
	}
	if got := SubstringFrom(s, 1); got != "130" {
		t.Errorf("SubstringFrom = %q, want %q", got, "130")
	}
	if got := SubstringTo(s, 2); got != "01" {
		t.Errorf("SubstringTo = %q, want %q", got, "01")
	}
	if got := Substring(s, 1, 3); got != "13" {
		t.Errorf("Substring = %q, want %q", got, "13")
	}
	if got := Substring(s, 3, 1); got != "" {
		t.Errorf("Substring inverted = %q, want empty", got)
	}
	if got := SubstringFrom(s, 10); got != "" {
		t.Errorf("SubstringFrom past end = %q, want empty", got)
	}
	if got := SubstringTo(s, -1); got != "" {
		t.Errorf("SubstringTo negative = %q, want empty", got)
	}
}

func TestInsertAt(t *testing.T) {
	tests := []struct {
		s    string
		i    int
		sep  string
		want string
	}{
		{s: "130", i: 1, sep: ":", want: "1:30"},
		{s: "00500", i: 3, sep: ".", want: "005.00"},
		{s: "12", i: 0, sep: ":", want: ":12"},
		{s: "12", i: 2, sep: ":", want: "12:"},
	}

	for _, tt := range tests {
		if got := InsertAt(tt.s, tt.i, tt.sep); got != tt.want {
			t.Errorf("InsertAt(%q, %d, %q) = %q, want %q", tt.s, tt.i, tt.sep, got, tt.want)
		}
	}
}
