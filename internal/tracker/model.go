package tracker

import "time"

// MinutesPerDay is the number of minute slots in one day timeline.
const MinutesPerDay = 24 * 60

// Day identifies one local calendar day in YYYY-MM-DD form.
type Day string

// DayOf reduces a wall-clock instant to its local calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format("2006-01-02"))
}

// MinuteOf reduces a wall-clock instant to its minute offset since local
// midnight, in [0,1440).
func MinuteOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Activity is a named, colored category of time use. The id is stable for
// the record's lifetime; name and color may be edited in place.
type Activity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Run is a maximal contiguous span of minutes assigned to one activity,
// half-open over [Start, End).
type Run struct {
	Activity string
	Start    int
	End      int
}
