package tracker

import "fmt"

// Timeline is the minute-indexed assignment store. It maps (day, minute)
// to an activity id; absent entries mean the minute is unassigned. Days
// are materialized lazily so an all-idle day costs nothing.
type Timeline struct {
	days map[Day]map[int]string
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{days: make(map[Day]map[int]string)}
}

// Get returns the activity id assigned to the minute, or "" when the
// minute is unassigned.
func (t *Timeline) Get(day Day, minute int) (string, error) {
	if minute < 0 || minute >= MinutesPerDay {
		return "", fmt.Errorf("get minute %d: %w", minute, ErrMinuteOutOfRange)
	}
	return t.days[day][minute], nil
}

// SetRange assigns every minute in the half-open range [start, end) to the
// activity id, or clears them when id is empty. Existing assignments inside
// the range are replaced unconditionally: a manual edit is authoritative
// over whatever was recorded automatically.
func (t *Timeline) SetRange(day Day, start, end int, id string) error {
	if start < 0 || end > MinutesPerDay || start > end {
		return fmt.Errorf("set range [%d,%d): %w", start, end, ErrMinuteOutOfRange)
	}
	if start == end {
		return nil
	}

	minutes := t.ensureDay(day)
	for minute := start; minute < end; minute++ {
		if id == "" {
			delete(minutes, minute)
		} else {
			minutes[minute] = id
		}
	}
	t.dropDayIfEmpty(day)
	return nil
}

// FillIfEmpty assigns the minute only when it is currently unassigned.
// The live-session commit path uses this so passive recording never
// clobbers a manual edit. Re-filling an already assigned minute is a no-op
// regardless of which activity holds it.
func (t *Timeline) FillIfEmpty(day Day, minute int, id string) error {
	if minute < 0 || minute >= MinutesPerDay {
		return fmt.Errorf("fill minute %d: %w", minute, ErrMinuteOutOfRange)
	}
	if id == "" {
		return nil
	}
	minutes := t.ensureDay(day)
	if _, taken := minutes[minute]; !taken {
		minutes[minute] = id
	}
	return nil
}

// FindRun returns the maximal contiguous run of the minute's activity
// containing that minute. An unassigned minute has no run.
func (t *Timeline) FindRun(day Day, minute int) (Run, bool, error) {
	id, err := t.Get(day, minute)
	if err != nil {
		return Run{}, false, err
	}
	if id == "" {
		return Run{}, false, nil
	}

	minutes := t.days[day]
	start := minute
	for start > 0 && minutes[start-1] == id {
		start--
	}
	end := minute + 1
	for end < MinutesPerDay && minutes[end] == id {
		end++
	}
	return Run{Activity: id, Start: start, End: end}, true, nil
}

// Runs returns every run of the day in ascending minute order.
func (t *Timeline) Runs(day Day) []Run {
	minutes := t.days[day]
	var runs []Run
	for minute := 0; minute < MinutesPerDay; {
		id := minutes[minute]
		if id == "" {
			minute++
			continue
		}
		end := minute + 1
		for end < MinutesPerDay && minutes[end] == id {
			end++
		}
		runs = append(runs, Run{Activity: id, Start: minute, End: end})
		minute = end
	}
	return runs
}

// ClearActivity removes every assignment referencing the id across all
// stored days and reports how many minutes were cleared. It backs the
// delete cascade that keeps the timeline free of dangling activity ids.
func (t *Timeline) ClearActivity(id string) int {
	cleared := 0
	for day, minutes := range t.days {
		for minute, assigned := range minutes {
			if assigned == id {
				delete(minutes, minute)
				cleared++
			}
		}
		t.dropDayIfEmpty(day)
	}
	return cleared
}

// AssignedMinutes reports how many minutes of the day hold any activity.
func (t *Timeline) AssignedMinutes(day Day) int {
	return len(t.days[day])
}

// DayMinutes returns a copy of the day's minute assignments.
func (t *Timeline) DayMinutes(day Day) map[int]string {
	minutes := t.days[day]
	out := make(map[int]string, len(minutes))
	for minute, id := range minutes {
		out[minute] = id
	}
	return out
}

func (t *Timeline) ensureDay(day Day) map[int]string {
	minutes, ok := t.days[day]
	if !ok {
		minutes = make(map[int]string)
		t.days[day] = minutes
	}
	return minutes
}

func (t *Timeline) dropDayIfEmpty(day Day) {
	if minutes, ok := t.days[day]; ok && len(minutes) == 0 {
		delete(t.days, day)
	}
}
