// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/microwave/internal/timefmt"
)

// Config holds the application configuration.
type Config struct {
	Field FieldConfig `toml:"field"`
	UI    UIConfig    `toml:"ui"`
	Debug DebugConfig `toml:"debug"`
}

// FieldConfig holds the time field display settings.
type FieldConfig struct {
	ShowHours      bool   `toml:"show_hours"`
	ShowHundredths bool   `toml:"show_hundredths"`
	InitialValue   string `toml:"initial_value"` // e.g., "1:30", empty for none
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`  // "mocha", "latte"
	Accent string `toml:"accent"` // "#rrggbb", overrides the theme accent
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	LogPath string `toml:"log_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			ShowHours:      false,
			ShowHundredths: false,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Debug: DebugConfig{
			LogPath: "microwave-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "microwave", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Debug.LogPath = expandPath(cfg.Debug.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Field overrides
	if v := os.Getenv("MICROWAVE_SHOW_HOURS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MICROWAVE_SHOW_HOURS: %w", err)
		}
		cfg.Field.ShowHours = b
	}
	if v := os.Getenv("MICROWAVE_SHOW_HUNDREDTHS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MICROWAVE_SHOW_HUNDREDTHS: %w", err)
		}
		cfg.Field.ShowHundredths = b
	}
	if v := os.Getenv("MICROWAVE_INITIAL_VALUE"); v != "" {
		cfg.Field.InitialValue = v
	}

	// UI overrides
	if v := os.Getenv("MICROWAVE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("MICROWAVE_UI_ACCENT"); v != "" {
		cfg.UI.Accent = v
	}

	if v := os.Getenv("MICROWAVE_DEBUG_LOG"); v != "" {
		cfg.Debug.LogPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Field.InitialValue != "" {
		if _, err := timefmt.ParseDuration(c.Field.InitialValue); err != nil {
			return fmt.Errorf("initial_value: %w", err)
		}
	}
	if c.UI.Theme == "" {
		return fmt.Errorf("theme must be set")
	}
	if c.UI.Accent != "" && !isHexColor(c.UI.Accent) {
		return fmt.Errorf("accent must be a #rrggbb color, got %q", c.UI.Accent)
	}
	if c.Debug.LogPath == "" {
		return fmt.Errorf("debug log_path must be set")
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range strings.ToLower(s[1:]) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Format returns the time field format described by the config.
func (c *Config) Format() timefmt.Format {
	return timefmt.Format{
		ShowHours:      c.Field.ShowHours,
		ShowHundredths: c.Field.ShowHundredths,
	}
}

// InitialSeconds returns the configured initial value in seconds, or 0.
func (c *Config) InitialSeconds() float64 {
	if c.Field.InitialValue == "" {
		return 0
	}
	v, err := timefmt.ParseDuration(c.Field.InitialValue)
	if err != nil {
		return 0
	}
	return v
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
