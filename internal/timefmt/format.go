// Package timefmt formats raw keypad input into punctuated time strings
// ("microwave" entry) and parses those strings back into seconds.
//
// Digits shift in from the right: typing 1, 3, 0 renders 0:01, 0:13 and
// then 1:30. Values are positional, so 0:75 is a legal display with no
// carry into minutes.
package timefmt

import (
	"fmt"
	"math"
	"strings"

	"github.com/javiermolinar/microwave/internal/textutil"
)

const (
	baseDigits      = 4 // MM:SS
	hoursDigits     = 2
	hundredthDigits = 2

	hundredthSep = "."
	componentSep = ":"
)

// Format selects which optional components a time field displays.
type Format struct {
	ShowHundredths bool
	ShowHours      bool
}

// String returns the placeholder pattern, e.g. "0:00:00.00".
func (f Format) String() string {
	return Placeholder(f)
}

// CanonicalDigitWidth returns how many digits the field can hold:
// 4 for MM:SS, plus 2 each for hours and hundredths.
func CanonicalDigitWidth(f Format) int {
	width := baseDigits
	if f.ShowHours {
		width += hoursDigits
	}
	if f.ShowHundredths {
		width += hundredthDigits
	}
	return width
}

// Placeholder returns the empty-field hint for f.
func Placeholder(f Format) string {
	ph := "0:00"
	if f.ShowHundredths {
		ph += ".00"
	}
	if f.ShowHours {
		ph = "0:0" + ph
	}
	return ph
}

// placeholderDigits is the minimum digit count of a rendered value. The
// leading component shows a single digit until a second one is typed.
func placeholderDigits(f Format) int {
	return CanonicalDigitWidth(f) - 1
}

// Reformat filters raw down to digits and renders them under f.
//
// Short input is zero padded on the left, so partial entries are the least
// significant digits of the value. Input wider than the field keeps only the
// newest CanonicalDigitWidth digits, and redundant leading zeros are trimmed
// so the leading component never shows more than one zero.
func Reformat(raw string, f Format) string {
	digits := textutil.FilterDigits(raw)
	minWidth := placeholderDigits(f)
	maxWidth := CanonicalDigitWidth(f)

	if n := len(digits); n < minWidth {
		digits = strings.Repeat("0", minWidth-n) + digits
	}
	if n := len(digits); n > maxWidth {
		digits = digits[n-maxWidth:]
	}
	for len(digits) > minWidth && digits[0] == '0' {
		digits = digits[1:]
	}

	return punctuate(digits, f)
}

// punctuate inserts separators working leftwards from the end of digits.
// digits must hold at least placeholderDigits(f) characters.
func punctuate(digits string, f Format) string {
	s := digits
	idx := textutil.Length(s)
	if f.ShowHundredths {
		idx -= hundredthDigits
		s = textutil.InsertAt(s, idx, hundredthSep)
	}
	idx -= 2
	s = textutil.InsertAt(s, idx, componentSep)
	if f.ShowHours {
		idx -= 2
		s = textutil.InsertAt(s, idx, componentSep)
	}
	return s
}

// FormatSeconds renders a value in seconds as a display string under f.
// Without an hours component, whole hours are folded into minutes. Values
// that do not fit keep their least significant digits.
func FormatSeconds(seconds float64, f Format) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int64(math.Round(seconds * 100))
	hundredths := total % 100
	secs := total / 100 % 60
	mins := total / 100 / 60
	var hours int64
	if f.ShowHours {
		hours = mins / 60
		mins %= 60
	}

	var digits string
	if f.ShowHours {
		digits = fmt.Sprintf("%d%02d%02d", hours, mins, secs)
	} else {
		digits = fmt.Sprintf("%d%02d", mins, secs)
	}
	if f.ShowHundredths {
		digits += fmt.Sprintf("%02d", hundredths)
	}
	return Reformat(digits, f)
}
