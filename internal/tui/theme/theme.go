// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name    string `toml:"name"`
	Bg      string `toml:"bg"`       // Screen background
	BgField string `toml:"bg_field"` // Time field background
	Fg      string `toml:"fg"`       // Primary foreground
	FgMuted string `toml:"fg_muted"` // Placeholder, help text
	Accent  string `toml:"accent"`   // Focused border, cursor, title
	Error   string `toml:"error"`    // Parse failures
	Success string `toml:"success"`  // Committed value
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to mocha
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// WithAccent returns a copy of t using accent when it is set.
func (t *Theme) WithAccent(accent string) *Theme {
	c := *t
	if accent != "" {
		c.Accent = strings.ToLower(accent)
	}
	return &c
}

func (t *Theme) applyDefaults() {
	if t.BgField == "" {
		t.BgField = t.Bg
	}
	if t.FgMuted == "" {
		t.FgMuted = t.Fg
	}
	if t.Error == "" {
		t.Error = t.Accent
	}
	if t.Success == "" {
		t.Success = t.Fg
	}
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
