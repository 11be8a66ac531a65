package tracker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Store keys for the three persistent blobs.
const (
	keyActivities = "activities"
	keyTimeline   = "timeline"
	keySession    = "session"
)

// The timeline blob is a sparse JSON object keyed by "<day>_<minute>",
// matching the layout the original recordings used. The structured
// day->minute mapping exists only in memory.

func encodeTimeline(t *Timeline) ([]byte, error) {
	flat := make(map[string]string)
	for day := range t.days {
		for minute, id := range t.days[day] {
			flat[fmt.Sprintf("%s_%d", day, minute)] = id
		}
	}
	return json.Marshal(flat)
}

func decodeTimeline(data []byte) (*Timeline, error) {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode timeline blob: %w", err)
	}

	timeline := NewTimeline()
	for key, id := range flat {
		sep := strings.LastIndex(key, "_")
		if sep < 0 || id == "" {
			return nil, fmt.Errorf("decode timeline blob: malformed entry %q", key)
		}
		minute, err := strconv.Atoi(key[sep+1:])
		if err != nil || minute < 0 || minute >= MinutesPerDay {
			return nil, fmt.Errorf("decode timeline blob: bad minute in %q", key)
		}
		timeline.ensureDay(Day(key[:sep]))[minute] = id
	}
	return timeline, nil
}

func encodeActivities(c *Catalog) ([]byte, error) {
	return json.Marshal(c.List())
}

func decodeActivities(data []byte) ([]Activity, error) {
	var activities []Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("decode activities blob: %w", err)
	}
	return activities, nil
}

type sessionSnapshot struct {
	CurrentActivity string    `json:"currentActivity"`
	StartTime       time.Time `json:"startTime"`
}

func encodeSession(s Session) ([]byte, error) {
	return json.Marshal(sessionSnapshot{
		CurrentActivity: s.ActivityID,
		StartTime:       s.StartedAt,
	})
}

func decodeSession(data []byte) (Session, error) {
	var snapshot sessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Session{}, fmt.Errorf("decode session blob: %w", err)
	}
	return Session{
		ActivityID: snapshot.CurrentActivity,
		StartedAt:  snapshot.StartTime.In(time.Local),
	}, nil
}
