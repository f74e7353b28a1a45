package timefmt

// Field holds the state a time-entry widget keeps between events: the
// display format and the last committed value. Formatting and parsing
// themselves stay pure; Field only sequences them.
type Field struct {
	format Format
	value  float64
}

// NewField returns a field using format f with a zero value.
func NewField(f Format) *Field {
	return &Field{format: f}
}

// Format returns the current display format.
func (f *Field) Format() Format {
	return f.format
}

// SetFormat replaces the display format.
func (f *Field) SetFormat(format Format) {
	f.format = format
}

// SetShowHours toggles the hours component.
func (f *Field) SetShowHours(show bool) {
	f.format.ShowHours = show
}

// SetShowHundredths toggles the hundredths component.
func (f *Field) SetShowHundredths(show bool) {
	f.format.ShowHundredths = show
}

// Placeholder returns the empty-field hint for the current format.
func (f *Field) Placeholder() string {
	return Placeholder(f.format)
}

// Value returns the last computed value in seconds.
func (f *Field) Value() float64 {
	return f.value
}

// SetValue stores v and returns its display string.
func (f *Field) SetValue(v float64) string {
	text := FormatSeconds(v, f.format)
	f.value, _ = ParseDuration(text)
	return text
}

// Display renders the current value under the current format.
func (f *Field) Display() string {
	return FormatSeconds(f.value, f.format)
}

// OnTextChanged reformats the edited text and updates the value from the
// result. Reformat output always parses.
func (f *Field) OnTextChanged(text string) (string, float64) {
	display := Reformat(text, f.format)
	if v, err := ParseDuration(display); err == nil {
		f.value = v
	}
	return display, f.value
}

// OnEditingEnded parses text as it stands. On error the previous value is
// kept and the error is returned for the caller to report.
func (f *Field) OnEditingEnded(text string) (float64, error) {
	v, err := ParseDuration(text)
	if err != nil {
		return f.value, err
	}
	f.value = v
	return v, nil
}
