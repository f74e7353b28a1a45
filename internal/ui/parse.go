package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/microwave/internal/timefmt"
)

// ErrParseFailed is returned when at least one argument did not parse.
var ErrParseFailed = errors.New("some values could not be parsed")

var writeClipboard = clipboard.WriteAll

func (a *App) parseCmd() *cobra.Command {
	var (
		copyValues bool
		duration   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Convert time strings to seconds",
		Long: `Parse each argument as [[hours:]minutes:]seconds and print the total
in seconds. Components may be decimals, e.g. 1:30.5.

Examples:
  microwave parse 1:30          # 90
  microwave parse 1:00:00 2.5   # 3600, 2.5
  microwave parse --copy 4:20   # also copy 260 to the clipboard`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			var values []string
			failed := 0
			for _, text := range args {
				seconds, err := timefmt.ParseDuration(text)
				if err != nil {
					failed++
					_, _ = fmt.Fprintln(errOut, formatError("error: "+err.Error()))
					continue
				}
				v := formatSeconds(seconds)
				values = append(values, v)
				if duration {
					v = timefmt.ToDuration(seconds).String()
				}
				_, _ = fmt.Fprintf(out, "%s  %s\n", text, formatValue(v))
			}

			if copyValues && len(values) > 0 {
				if err := writeClipboard(strings.Join(values, "\n")); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				_, _ = fmt.Fprintln(errOut, formatMuted(fmt.Sprintf("copied %d value(s)", len(values))))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(args), ErrParseFailed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyValues, "copy", false, "Copy the parsed seconds to the clipboard")
	cmd.Flags().BoolVar(&duration, "duration", false, "Print values as Go durations (1m30s)")

	return cmd
}
