package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microwave/internal/config"
	"github.com/javiermolinar/microwave/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initFile bool
		path     string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Print the effective configuration (defaults, then the config file,
then MICROWAVE_* environment variables).

Example:
  microwave config
  microwave config --init   # write the defaults if no file exists`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.OutOrStdout(), path, initFile)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Create the config file with default values if missing")
	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file path")

	return cmd
}

func runConfig(out io.Writer, path string, initFile bool) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", path)

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if initFile {
		_, statErr := os.Stat(path)
		if os.IsNotExist(statErr) {
			if err := config.Default().SaveTo(path); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			_, _ = fmt.Fprintf(out, "Created %s\n\n", path)
		} else {
			_, _ = fmt.Fprintln(out, formatMuted("Config file already exists, leaving it unchanged"))
			_, _ = fmt.Fprintln(out)
		}
	}

	printConfig(out, cfg)

	if !theme.IsAvailable(cfg.UI.Theme) {
		_, _ = fmt.Fprintf(out, "\n%s\n", formatError(fmt.Sprintf("unknown theme %q, falling back to mocha", cfg.UI.Theme)))
	}
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, formatHeader("Current configuration:"))
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[field]")
	_, _ = fmt.Fprintf(out, "  show_hours      = %t\n", cfg.Field.ShowHours)
	_, _ = fmt.Fprintf(out, "  show_hundredths = %t\n", cfg.Field.ShowHundredths)
	_, _ = fmt.Fprintf(out, "  initial_value   = %q\n", cfg.Field.InitialValue)
	_, _ = fmt.Fprintf(out, "  %s\n", formatMuted("placeholder "+cfg.Format().String()))
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  theme           = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(out, "  accent          = %q\n", cfg.UI.Accent)
	_, _ = fmt.Fprintln(out, "\n[debug]")
	_, _ = fmt.Fprintf(out, "  log_path        = %s\n", cfg.Debug.LogPath)
}
