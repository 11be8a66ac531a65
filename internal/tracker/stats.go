package tracker

import (
	"fmt"
	"time"
)

// Totals maps activity id to counted minutes for one day. Every catalog
// activity is present, zero included.
type Totals map[string]int

// StatLine is one row of the display-ready stats projection.
type StatLine struct {
	Activity Activity
	Minutes  int
}

// ComputeTotals counts the committed minutes per activity for the day and,
// when the live session runs on that day, adds its elapsed minutes on top.
// Committed and live minutes are disjoint by construction (live minutes are
// only committed on stop), so nothing is double-counted.
func ComputeTotals(day Day, timeline *Timeline, catalog *Catalog, session Session, now time.Time) Totals {
	totals := make(Totals, catalog.Len())
	for _, activity := range catalog.List() {
		totals[activity.ID] = 0
	}

	for _, id := range timeline.DayMinutes(day) {
		if _, known := totals[id]; known {
			totals[id]++
		}
	}

	if session.Running() && session.StartDay() == day {
		if _, known := totals[session.ActivityID]; known {
			totals[session.ActivityID] += session.ElapsedMinutes(now)
		}
	}
	return totals
}

// NonZero projects the totals into display order, dropping idle activities.
func (t Totals) NonZero(catalog *Catalog) []StatLine {
	var lines []StatLine
	for _, activity := range catalog.List() {
		if minutes := t[activity.ID]; minutes > 0 {
			lines = append(lines, StatLine{Activity: activity, Minutes: minutes})
		}
	}
	return lines
}

// FormatMinutes renders a minute count the way the stats panel shows it.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// DayProgress reports how much of the day has elapsed at now, in [0,1),
// with second resolution.
func DayProgress(now time.Time) float64 {
	seconds := MinuteOf(now)*60 + now.Second()
	return float64(seconds) / float64(MinutesPerDay*60)
}
