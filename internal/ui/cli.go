package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microwave/internal/config"
	"github.com/javiermolinar/microwave/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	debug      bool // Enable debug logging
	hours      bool
	hundredths bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "microwave",
		Short: "Keypad-style time entry",
		Long: `Microwave is a time entry field that works like a microwave keypad.

Digits shift in from the right and the separators are placed for you:
typing 1, 3, 0 shows 0:01, then 0:13, then 1:30.

Run without a subcommand to open the interactive field. The committed
value is printed in seconds on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runField(cmd)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes the configured log file)")
	a.root.Flags().BoolVar(&a.hours, "hours", cfg.Field.ShowHours, "Show an hours component")
	a.root.Flags().BoolVar(&a.hundredths, "hundredths", cfg.Field.ShowHundredths, "Show a hundredths component")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.formatCmd())
	a.root.AddCommand(a.parseCmd())

	return a
}

func (a *App) runField(cmd *cobra.Command) error {
	f := a.config.Format()
	f.ShowHours = a.hours
	f.ShowHundredths = a.hundredths

	res, err := tui.Run(a.config, a.debug, tui.WithFormat(f))
	if err != nil {
		return fmt.Errorf("running field: %w", err)
	}
	if !res.Committed {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), formatMuted("no value committed"))
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatSeconds(res.Seconds))
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "microwave %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
