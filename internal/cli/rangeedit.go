package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayline/internal/store"
)

func newSetCommand(ctx context.Context, st store.Store) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "set <start HH:MM> <end HH:MM> <name|id>",
		Short: "Assign a time range to an activity, overwriting prior records.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			day, err := resolveDay(dateFlag)
			if err != nil {
				return err
			}

			start, err := resolveClockMinute(args[0])
			if err != nil {
				return err
			}
			end, err := resolveClockMinute(args[1])
			if err != nil {
				return err
			}

			activity, err := findActivity(trk, args[2])
			if err != nil {
				return err
			}

			if err := trk.ApplyRangeEdit(day, start, end, activity.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s-%s to %s\n",
				formatClock(start), formatClock(end), formatActivity(activity))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}

func newClearCommand(ctx context.Context, st store.Store) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "clear <start HH:MM> <end HH:MM>",
		Short: "Clear a time range back to unassigned.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			day, err := resolveDay(dateFlag)
			if err != nil {
				return err
			}

			start, err := resolveClockMinute(args[0])
			if err != nil {
				return err
			}
			end, err := resolveClockMinute(args[1])
			if err != nil {
				return err
			}

			if err := trk.ApplyRangeEdit(day, start, end, ""); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s-%s\n", formatClock(start), formatClock(end))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")

	return cmd
}
