package tracker

import "time"

// Session is the live, not-yet-committed activity interval. The zero value
// is the idle state. Elapsed minutes are derived from StartedAt on demand;
// nothing is written to the timeline until the session commits.
type Session struct {
	ActivityID string
	StartedAt  time.Time
}

// Running reports whether an activity is currently being recorded.
func (s Session) Running() bool {
	return s.ActivityID != ""
}

// StartDay returns the local day the session began on.
func (s Session) StartDay() Day {
	return DayOf(s.StartedAt)
}

// ElapsedMinutes reports the whole minutes recorded so far relative to now.
// A session stopped inside its starting minute, or one observed across a
// clock anomaly, counts as zero rather than negative.
func (s Session) ElapsedMinutes(now time.Time) int {
	if !s.Running() || DayOf(now) != s.StartDay() {
		return 0
	}
	elapsed := MinuteOf(now) - MinuteOf(s.StartedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// commitUntil writes the elapsed span [minuteOf(start), minuteOf(now)) on
// the start day. Minutes already assigned are left untouched, so passive
// recording never overwrites a manual edit. A sub-minute span commits
// nothing.
func (s Session) commitUntil(timeline *Timeline, now time.Time) error {
	return s.commitSpan(timeline, MinuteOf(now))
}

// commitThroughEndOfDay writes the span from the start minute through the
// last minute of the start day. Used when a restored session turns out to
// have begun on an earlier day: the overnight run is truncated at midnight
// instead of being carried into the new day.
func (s Session) commitThroughEndOfDay(timeline *Timeline) error {
	return s.commitSpan(timeline, MinutesPerDay)
}

func (s Session) commitSpan(timeline *Timeline, endMinute int) error {
	if !s.Running() {
		return nil
	}
	start := MinuteOf(s.StartedAt)
	for minute := start; minute < endMinute; minute++ {
		if err := timeline.FillIfEmpty(s.StartDay(), minute, s.ActivityID); err != nil {
			return err
		}
	}
	return nil
}
