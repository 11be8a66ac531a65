package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayline/internal/store"
)

func newActivitiesCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List the defined activities in display order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}
			printActivities(cmd, trk.Activities())
			return nil
		},
	}

	return cmd
}

func newAddCommand(ctx context.Context, st store.Store) *cobra.Command {
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Define a new activity.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}

			activity, err := trk.AddActivity(joinArgs(args), colorFlag)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatActivity(activity))
			return nil
		},
	}

	cmd.Flags().StringVar(&colorFlag, "color", "#3498db", "Display color as #rrggbb hex")

	return cmd
}

func newEditCommand(ctx context.Context, st store.Store) *cobra.Command {
	var (
		nameFlag  string
		colorFlag string
	)

	cmd := &cobra.Command{
		Use:   "edit <name|id>",
		Short: "Rename or recolor an activity.",
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

			name := activity.Name
			if nameFlag != "" {
				name = nameFlag
			}
			color := activity.Color
			if colorFlag != "" {
				color = colorFlag
			}

			updated, err := trk.EditActivity(activity.ID, name, color)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatActivity(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "New activity name (default: unchanged)")
	cmd.Flags().StringVar(&colorFlag, "color", "", "New #rrggbb hex color (default: unchanged)")

	return cmd
}

func newRemoveCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name|id>",
		Short: "Delete an activity and every minute recorded against it.",
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

			if err := trk.DeleteActivity(activity.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", activity.Name)
			return nil
		},
	}

	return cmd
}
