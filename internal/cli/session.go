package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayline/internal/store"
	"dayline/internal/tracker"
)

func newToggleCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <name|id>",
		Short: "Start the activity, or stop it if it is already running.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			activity, err := findActivity(trk, args[0])
			if err != nil {
				return err
			}

			outcome, err := trk.Toggle(activity.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch outcome {
			case tracker.ToggleStarted:
				fmt.Fprintf(out, "Started %s\n", formatActivity(activity))
			case tracker.ToggleStopped:
				fmt.Fprintf(out, "Stopped %s\n", formatActivity(activity))
			case tracker.ToggleSwitched:
				fmt.Fprintf(out, "Switched to %s\n", formatActivity(activity))
			}
			return nil
		},
	}

	return cmd
}

func newStopCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running activity and commit its elapsed minutes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			stopped, err := trk.Stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !stopped.Running() {
				fmt.Fprintln(out, "No activity is running.")
				return nil
			}
			fmt.Fprintf(out, "Stopped %s after %s\n",
				activityName(trk, stopped.ActivityID),
				tracker.FormatMinutes(stopped.ElapsedMinutes(trk.Now())))
			return nil
		},
	}

	return cmd
}

func newStatusCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running activity and how far the day has advanced.",
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %.2f%% of the day elapsed\n",
				trk.Today(), tracker.DayProgress(trk.Now())*100)

			session := trk.Session()
			if !session.Running() {
				fmt.Fprintln(out, "No activity is running.")
				return nil
			}

			fmt.Fprintf(out, "Running: %s since %s (%s so far)\n",
				activityName(trk, session.ActivityID),
				session.StartedAt.Format("15:04"),
				tracker.FormatMinutes(session.ElapsedMinutes(trk.Now())))
			return nil
		},
	}

	return cmd
}
