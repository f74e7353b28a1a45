// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"math"
)

// FormatSeconds formats seconds with two decimals, e.g. "90.00s".
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatHuman formats seconds as "Xh Ym Zs", dropping leading zero units.
func FormatHuman(seconds float64) string {
	total := int(math.Round(seconds))
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h == 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
