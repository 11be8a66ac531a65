package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"dayline/internal/store"
	"dayline/internal/tracker"
)

// loadTracker opens the tracker for a command invocation. The --store
// flag, when set, points at an alternate base directory and takes
// precedence over the injected store.
func loadTracker(cmd *cobra.Command, st store.Store) (*tracker.Tracker, error) {
	if dir, err := cmd.Flags().GetString("store"); err == nil && dir != "" {
		fs, err := store.NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		st = fs
	}
	return tracker.Load(st)
}

func resolveDay(dateFlag string) (tracker.Day, error) {
	if dateFlag == "" {
		return tracker.DayOf(time.Now().In(time.Local)), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	return tracker.DayOf(parsed), nil
}

// resolveClockMinute converts an HH:MM argument into a minute offset.
// "24:00" is accepted so a range can reach the end of the day.
func resolveClockMinute(value string) (int, error) {
	if value == "24:00" {
		return tracker.MinutesPerDay, nil
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", value, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// findActivity resolves an id-or-name reference against the catalog.
func findActivity(trk *tracker.Tracker, ref string) (tracker.Activity, error) {
	for _, activity := range trk.Activities() {
		if activity.ID == ref || activity.Name == ref {
			return activity, nil
		}
	}
	return tracker.Activity{}, fmt.Errorf("%q: %w", ref, tracker.ErrActivityNotFound)
}

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

func formatActivity(activity tracker.Activity) string {
	return fmt.Sprintf("%s %s", swatch(activity.Color), activity.Name)
}

func formatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func printActivities(cmd *cobra.Command, activities []tracker.Activity) {
	out := cmd.OutOrStdout()
	if len(activities) == 0 {
		fmt.Fprintln(out, "(no activities)")
		return
	}
	for i, activity := range activities {
		fmt.Fprintf(out, "%d. %s %s (%s)\n", i+1, swatch(activity.Color), activity.Name, activity.ID)
	}
}

func printStats(cmd *cobra.Command, day tracker.Day, lines []tracker.StatLine) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", day)
	if len(lines) == 0 {
		fmt.Fprintln(out, "(nothing recorded yet)")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(out, "%s %s: %s\n", swatch(line.Activity.Color), line.Activity.Name, tracker.FormatMinutes(line.Minutes))
	}
}

func activityName(trk *tracker.Tracker, id string) string {
	if activity, ok := trk.Activity(id); ok {
		return activity.Name
	}
	return id
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
