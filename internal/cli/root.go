package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dayline/internal/store"
	"dayline/internal/ui"
	"dayline/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, st store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dayline",
		Short:   "Track which activity fills each minute of your day.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			trk, err := loadTracker(cmd, st)
			if err != nil {
				return err
			}
			m := ui.NewModel(ctx, trk)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("store", "", "Base directory for data files (default: $DAYLINE_HOME or ~/.dayline)")

	cmd.AddCommand(
		newActivitiesCommand(ctx, st),
		newAddCommand(ctx, st),
		newEditCommand(ctx, st),
		newRemoveCommand(ctx, st),
		newToggleCommand(ctx, st),
		newStopCommand(ctx, st),
		newStatusCommand(ctx, st),
		newSetCommand(ctx, st),
		newClearCommand(ctx, st),
		newStatsCommand(ctx, st),
		newShowCommand(ctx, st),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	st, err := store.NewFileStore("")
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, st)
	return cmd.Execute()
}

// Main is a helper used by cmd/dayline/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
