package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/microwave/internal/textutil"
)

const maxComponents = 3

// ErrMalformedDuration is matched by every error returned from ParseDuration.
var ErrMalformedDuration = errors.New("malformed duration string")

// MalformedDurationError describes why a time string could not be parsed.
type MalformedDurationError struct {
	Input     string
	Component string // offending component, empty for count errors
	Reason    string
}

func (e *MalformedDurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s %q: component %q %s", ErrMalformedDuration, e.Input, e.Component, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedDuration, e.Input, e.Reason)
}

func (e *MalformedDurationError) Unwrap() error {
	return ErrMalformedDuration
}

// ParseDuration converts "S", "M:S" or "H:M:S" into seconds. Any component
// may carry a fractional part, e.g. "0:05.50" is 5.5.
func ParseDuration(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &MalformedDurationError{Input: text, Reason: "has no time components"}
	}

	components := strings.Split(trimmed, componentSep)
	if len(components) > maxComponents {
		return 0, &MalformedDurationError{
			Input:  text,
			Reason: fmt.Sprintf("has %d time components, want at most %d", len(components), maxComponents),
		}
	}

	var total float64
	for _, c := range components {
		v, err := parseComponent(c)
		if err != nil {
			return 0, &MalformedDurationError{Input: text, Component: c, Reason: err.Error()}
		}
		total = total*60 + v
	}
	return total, nil
}

// parseComponent accepts digits with at most one decimal point.
func parseComponent(c string) (float64, error) {
	digits := 0
	points := 0
	for _, r := range c {
		switch {
		case textutil.IsDigit(r):
			digits++
		case string(r) == hundredthSep:
			points++
		default:
			return 0, fmt.Errorf("contains %q", r)
		}
	}
	if digits == 0 {
		return 0, errors.New("is not a number")
	}
	if points > 1 {
		return 0, errors.New("has more than one decimal point")
	}
	v, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return 0, fmt.Errorf("is not a number: %w", err)
	}
	return v, nil
}

// ToDuration converts seconds to a time.Duration, rounded to the millisecond.
func ToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}
