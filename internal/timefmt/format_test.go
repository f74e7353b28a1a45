package timefmt

import (
	"testing"

	"github.com/javiermolinar/microwave/internal/textutil"
)

var (
	plain      = Format{}
	hours      = Format{ShowHours: true}
	hundredths = Format{ShowHundredths: true}
	full       = Format{ShowHours: true, ShowHundredths: true}
	allFormats = []Format{plain, hours, hundredths, full}
)

func TestCanonicalDigitWidth(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   int
	}{
		{name: "minutes seconds", format: plain, want: 4},
		{name: "hours", format: hours, want: 6},
		{name: "hundredths", format: hundredths, want: 6},
		{name: "hours and hundredths", format: full, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalDigitWidth(tt.format); got != tt.want {
				t.Errorf("CanonicalDigitWidth(%+v) = %d, want %d", tt.format, got, tt.want)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{format: plain, want: "0:00"},
		{format: hours, want: "0:00:00"},
		{format: hundredths, want: "0:00.00"},
		{format: full, want: "0:00:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Placeholder(tt.format)
			if got != tt.want {
				t.Errorf("Placeholder(%+v) = %q, want %q", tt.format, got, tt.want)
			}
			if tt.format.String() != got {
				t.Errorf("String() = %q, want %q", tt.format.String(), got)
			}
			// The placeholder holds one digit fewer than the field capacity.
			if n := len(textutil.FilterDigits(got)); n != CanonicalDigitWidth(tt.format)-1 {
				t.Errorf("placeholder digits = %d, want %d", n, CanonicalDigitWidth(tt.format)-1)
			}
		})
	}
}

func TestReformat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		want   string
	}{
		{name: "empty", input: "", format: plain, want: "0:00"},
		{name: "single digit", input: "5", format: plain, want: "0:05"},
		{name: "no carry", input: "75", format: plain, want: "0:75"},
		{name: "three digits", input: "130", format: plain, want: "1:30"},
		{name: "typed after display", input: "0:007", format: plain, want: "0:07"},
		{name: "fourth digit", input: "1:305", format: plain, want: "13:05"},
		{name: "overflow keeps newest digits", input: "13:055", format: plain, want: "30:55"},
		{name: "overflow then trims zeros", input: "10000", format: plain, want: "0:00"},
		{name: "letters dropped", input: "a1b", format: plain, want: "0:01"},
		{name: "all zeros", input: "000000", format: plain, want: "0:00"},
		{name: "backspace", input: "1:3", format: plain, want: "0:13"},

		{name: "hours single digit", input: "5", format: hours, want: "0:00:05"},
		{name: "hours full", input: "123456", format: hours, want: "12:34:56"},
		{name: "hours overflow", input: "1234567", format: hours, want: "23:45:67"},

		{name: "hundredths", input: "550", format: hundredths, want: "0:05.50"},
		{name: "hundredths full", input: "123456", format: hundredths, want: "12:34.56"},

		{name: "full partial", input: "10203", format: full, want: "0:01:02.03"},
		{name: "full", input: "12345678", format: full, want: "12:34:56.78"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reformat(tt.input, tt.format)
			if got != tt.want {
				t.Errorf("Reformat(%q, %+v) = %q, want %q", tt.input, tt.format, got, tt.want)
			}
		})
	}
}

func TestReformatIdempotent(t *testing.T) {
	inputs := []string{"", "5", "75", "130", "0:007", "13:055", "99999999999", "1a2b3", "000000001", "10000000"}

	for _, f := range allFormats {
		for _, in := range inputs {
			once := Reformat(in, f)
			twice := Reformat(textutil.FilterDigits(once), f)
			if once != twice {
				t.Errorf("format %s: Reformat(%q) = %q, reapplied = %q", f, in, once, twice)
			}
			if n := len(textutil.FilterDigits(once)); n > CanonicalDigitWidth(f) {
				t.Errorf("format %s: Reformat(%q) = %q holds %d digits, want at most %d", f, in, once, n, CanonicalDigitWidth(f))
			}
		}
	}
}

func TestReformatTyping(t *testing.T) {
	// Feed keystrokes one at a time, the way a field sees them.
	text := Reformat("", plain)
	want := []string{"0:01", "0:13", "1:30", "13:00", "30:00"}
	for i, key := range "13000" {
		text = Reformat(text+string(key), plain)
		if text != want[i] {
			t.Fatalf("after key %d (%q): got %q, want %q", i, key, text, want[i])
		}
	}
}

func TestReformatRoundTrip(t *testing.T) {
	tests := []struct {
		input  string
		format Format
		want   float64
	}{
		{input: "130", format: plain, want: 90},
		{input: "75", format: plain, want: 75},
		{input: "10203", format: hours, want: 3723},
		{input: "550", format: hundredths, want: 5.5},
		{input: "1020304", format: full, want: 3723.04},
	}

	for _, tt := range tests {
		display := Reformat(tt.input, tt.format)
		got, err := ParseDuration(display)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", display, err)
		}
		if !approxEqual(got, tt.want) {
			t.Errorf("ParseDuration(Reformat(%q)) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		format  Format
		want    string
	}{
		{name: "zero", seconds: 0, format: plain, want: "0:00"},
		{name: "ninety", seconds: 90, format: plain, want: "1:30"},
		{name: "normalizes carry", seconds: 75, format: plain, want: "1:15"},
		{name: "hours folded into minutes", seconds: 3723, format: plain, want: "62:03"},
		{name: "hours", seconds: 3723, format: hours, want: "1:02:03"},
		{name: "hundredths", seconds: 5.5, format: hundredths, want: "0:05.50"},
		{name: "hundredths dropped", seconds: 5.5, format: plain, want: "0:05"},
		{name: "full", seconds: 3723.04, format: full, want: "1:02:03.04"},
		{name: "negative clamps to zero", seconds: -3, format: plain, want: "0:00"},
		{name: "too wide keeps low digits", seconds: 360000, format: hours, want: "0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.seconds, tt.format)
			if got != tt.want {
				t.Errorf("FormatSeconds(%v, %+v) = %q, want %q", tt.seconds, tt.format, got, tt.want)
			}
		})
	}
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
