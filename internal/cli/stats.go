package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayline/internal/store"
	"dayline/internal/tracker"
	"dayline/internal/ui"
)

// dayBarWidth is the cell count for the non-interactive day bar. The TUI
// sizes its bar from the terminal instead.
const dayBarWidth = 72

func newStatsCommand(ctx context.Context, st store.Store) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize minutes per activity for a day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			day, err := resolveDay(dateFlag)
			if err != nil {
				return err
			}

			printStats(cmd, day, trk.StatLines(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func newShowCommand(ctx context.Context, st store.Store) *cobra.Command {
	var dateFlag string
	var atFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a day's recorded spans in minute order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			day, err := resolveDay(dateFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if atFlag != "" {
				minute, err := resolveClockMinute(atFlag)
				if err != nil {
					return err
				}
				run, ok, err := trk.RunAt(day, minute)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(out, "%s %s: (unassigned)\n", day, formatClock(minute))
					return nil
				}
				fmt.Fprintf(out, "%s %s-%s %s (%s)\n",
					day, formatClock(run.Start), formatClock(run.End),
					activityName(trk, run.Activity),
					tracker.FormatMinutes(run.End-run.Start))
				return nil
			}

			runs := trk.Runs(day)
			fmt.Fprintf(out, "%s\n", day)
			fmt.Fprintf(out, "%s\n", ui.DayBar(trk, day, trk.Now(), dayBarWidth))
			if len(runs) == 0 {
				fmt.Fprintln(out, "(no minutes recorded)")
				return nil
			}
			for _, run := range runs {
				name := activityName(trk, run.Activity)
				fmt.Fprintf(out, "%s-%s %s (%s)\n",
					formatClock(run.Start), formatClock(run.End), name,
					tracker.FormatMinutes(run.End-run.Start))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&atFlag, "at", "", "Show only the span containing this HH:MM")

	return cmd
}
