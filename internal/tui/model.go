package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/microwave/internal/config"
	"github.com/javiermolinar/microwave/internal/timefmt"
	"github.com/javiermolinar/microwave/internal/tui/input"
	"github.com/javiermolinar/microwave/internal/tui/theme"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Model is the main TUI model.
type Model struct {
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	field     input.TimeField
	committed bool // a value has been committed at least once

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string    // Temporary status/error message
	statusIsErr bool      // Render statusMsg as an error
	statusTime  time.Time // When to clear message

	// Error state, cleared by the next successful commit
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithFormat overrides the configured display format.
func WithFormat(f timefmt.Format) ModelOption {
	return func(m *Model) {
		m.field.SetFormat(f)
	}
}

// WithSeconds starts the field with a value.
func WithSeconds(v float64) ModelOption {
	return func(m *Model) {
		m.field.SetSeconds(v)
		m.committed = true
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	t = t.WithAccent(cfg.UI.Accent)
	styles := NewStyles(t)

	m := &Model{
		config: cfg,
		theme:  t,
		styles: styles,
		field:  input.NewTimeField(cfg.Format(), styles.TimeField()),
	}
	if cfg.Field.InitialValue != "" {
		m.field.SetSeconds(cfg.InitialSeconds())
		m.committed = true
	}

	for _, opt := range opts {
		opt(m)
	}
	m.field.Focus()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Seconds returns the last computed value.
func (m Model) Seconds() float64 {
	return m.field.Seconds()
}

// Committed reports whether editing ended with a valid value at least once.
func (m Model) Committed() bool {
	return m.committed
}

// Err returns the last unresolved error.
func (m Model) Err() error {
	return m.err
}

// Result is what the TUI hands back when it exits.
type Result struct {
	Text      string
	Seconds   float64
	Committed bool
}

// Run starts the TUI and returns the final field state.
func Run(cfg *config.Config, debug bool, opts ...ModelOption) (Result, error) {
	if err := InitDebugLogger(debug, cfg.Debug.LogPath); err != nil {
		return Result{}, err
	}
	defer CloseDebugLogger()

	model := New(cfg, opts...)
	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Text: m.field.Text(), Seconds: m.Seconds(), Committed: m.committed}, nil
}
