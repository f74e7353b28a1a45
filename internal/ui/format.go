package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/microwave/internal/textutil"
	"github.com/javiermolinar/microwave/internal/timefmt"
)

func (a *App) formatCmd() *cobra.Command {
	var (
		hours      bool
		hundredths bool
		steps      bool
	)

	cmd := &cobra.Command{
		Use:   "format <keys>...",
		Short: "Format typed digits the way the field would",
		Long: `Format each argument as if its characters had been typed into the field.

Anything that is not a digit is ignored.

Examples:
  microwave format 130            # 1:30
  microwave format --hours 10203  # 1:02:03
  microwave format --steps 130    # show the display after every key`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := timefmt.Format{ShowHours: hours, ShowHundredths: hundredths}
			out := cmd.OutOrStdout()
			if steps {
				for _, keys := range args {
					printSteps(out, keys, f)
				}
				return nil
			}
			printFormatted(out, args, f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hours, "hours", a.config.Field.ShowHours, "Show an hours component")
	cmd.Flags().BoolVar(&hundredths, "hundredths", a.config.Field.ShowHundredths, "Show a hundredths component")
	cmd.Flags().BoolVar(&steps, "steps", false, "Show the display after each keystroke")

	return cmd
}

// printFormatted prints one "input  display" row per argument, with the
// input column capped to half the terminal.
func printFormatted(out io.Writer, args []string, f timefmt.Format) {
	width := 0
	for _, arg := range args {
		width = max(width, textutil.Length(arg))
	}
	width = min(width, termWidth()/2)

	for _, arg := range args {
		label := arg
		if textutil.Length(label) > width {
			label = textutil.SubstringTo(label, width)
		}
		_, _ = fmt.Fprintf(out, "%-*s  %s\n", width, label, formatValue(timefmt.Reformat(arg, f)))
	}
}

// printSteps replays keys one at a time through a field.
func printSteps(out io.Writer, keys string, f timefmt.Format) {
	field := timefmt.NewField(f)
	_, _ = fmt.Fprintln(out, formatHeader(keys))

	text := ""
	for _, r := range keys {
		text += string(r)
		display, seconds := field.OnTextChanged(text)
		marker := string(r)
		if !textutil.IsDigit(r) {
			marker = formatMuted(marker)
		}
		_, _ = fmt.Fprintf(out, "  %s  %-*s  %s\n", marker, len(field.Placeholder()), display, formatMuted(formatSeconds(seconds)+"s"))
		text = display
	}
	_, _ = fmt.Fprintln(out, strings.Repeat(" ", 2)+formatValue(text))
}
