package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dayline/internal/tracker"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	runningStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	pastColor   = lipgloss.Color("#aaaaaa")
	futureColor = lipgloss.Color("#dddddd")
)

// View renders the day bar, the activity list, and the stats panel.
func (m Model) View() string {
	day := m.trk.Today()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · %.2f%% of the day", day, tracker.DayProgress(m.now)*100)))
	b.WriteString("\n\n")
	b.WriteString(m.renderDayBar(day))
	b.WriteString("\n\n")
	b.WriteString(m.renderActivities())
	b.WriteString("\n")
	b.WriteString(m.renderStats(day))
	b.WriteString("\n")
	b.WriteString(m.renderPrompt())
	return b.String()
}

func (m Model) renderDayBar(day tracker.Day) string {
	return DayBar(m.trk, day, m.now, m.width-2)
}

// DayBar compresses the 1440 minute slots into one row of colored cells.
// Committed minutes win; the live session's elapsed span is shown on top
// of unassigned minutes; the rest is gray for the past and faint for the
// future.
func DayBar(trk *tracker.Tracker, day tracker.Day, now time.Time, width int) string {
	if width < 24 {
		width = 24
	}
	if width > tracker.MinutesPerDay {
		width = tracker.MinutesPerDay
	}

	minutes := trk.DayMinutes(day)
	session := trk.Session()
	liveStart, liveEnd := -1, -1
	if session.Running() && session.StartDay() == day {
		liveStart = tracker.MinuteOf(session.StartedAt)
		liveEnd = liveStart + session.ElapsedMinutes(now)
	}
	nowMinute := tracker.MinuteOf(now)
	switch today := tracker.DayOf(now); {
	case day < today:
		nowMinute = tracker.MinutesPerDay
	case day > today:
		nowMinute = -1
	}

	var bar strings.Builder
	for cell := 0; cell < width; cell++ {
		minute := cell * tracker.MinutesPerDay / width
		color := cellColor(trk, minutes, minute, liveStart, liveEnd, nowMinute, session.ActivityID)
		bar.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
	}
	return bar.String()
}

func cellColor(trk *tracker.Tracker, minutes map[int]string, minute, liveStart, liveEnd, nowMinute int, liveID string) lipgloss.Color {
	if id, ok := minutes[minute]; ok {
		if activity, found := trk.Activity(id); found {
			return lipgloss.Color(activity.Color)
		}
	}
	if liveStart <= minute && minute < liveEnd {
		if activity, found := trk.Activity(liveID); found {
			return lipgloss.Color(activity.Color)
		}
	}
	if minute <= nowMinute {
		return pastColor
	}
	return futureColor
}

func (m Model) renderActivities() string {
	activities := m.trk.Activities()
	if len(activities) == 0 {
		return dimStyle.Render("No activities defined. Press 'a' to add one.")
	}

	session := m.trk.Session()

	var b strings.Builder
	for i, activity := range activities {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(activity.Color)).Render("■")
		label := activity.Name
		if session.ActivityID == activity.ID {
			label = runningStyle.Render(fmt.Sprintf("%s · running %s", activity.Name,
				tracker.FormatMinutes(session.ElapsedMinutes(m.now))))
		}
		if i == m.selected && m.mode == modeNormal {
			label = selectedStyle.Render(label)
			b.WriteString(fmt.Sprintf("> %s %s\n", swatch, label))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", swatch, label))
		}
	}
	return b.String()
}

func (m Model) renderStats(day tracker.Day) string {
	lines := m.trk.StatLines(day)
	if len(lines) == 0 {
		return dimStyle.Render("Nothing recorded yet today.")
	}

	var b strings.Builder
	for _, line := range lines {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(line.Activity.Color)).Render("■")
		b.WriteString(fmt.Sprintf("%s %s: %s\n", swatch, line.Activity.Name, tracker.FormatMinutes(line.Minutes)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderPrompt() string {
	switch m.mode {
	case modeAddName:
		return fmt.Sprintf("\nNew activity name (Enter to continue, Esc to cancel):\n%s", m.input.View())
	case modeAddColor:
		return fmt.Sprintf("\nColor for %q (Enter to save, Esc to cancel):\n%s", m.pendingName, m.input.View())
	case modeEditName:
		return fmt.Sprintf("\nRename activity (Enter to continue, Esc to cancel):\n%s", m.input.View())
	case modeEditColor:
		return fmt.Sprintf("\nNew color for %q (Enter to save, Esc to cancel):\n%s", m.pendingName, m.input.View())
	case modeConfirmDelete:
		name := m.editingID
		if activity, ok := m.trk.Activity(m.editingID); ok {
			name = activity.Name
		}
		return fmt.Sprintf("\nDelete %q and every minute recorded against it? (y/n)", name)
	}

	var b strings.Builder
	if m.errorLine != "" {
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteString("\n")
	}
	if m.statusLine != "" {
		b.WriteString(m.statusLine)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter toggle · s stop · a add · e edit · d delete · q quit"))
	return b.String()
}
