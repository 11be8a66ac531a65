package tracker

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimelineBlobUsesCompositeKeys(t *testing.T) {
	tl := NewTimeline()
	if err := tl.SetRange(testDay, 100, 102, "study"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	data, err := encodeTimeline(tl)
	if err != nil {
		t.Fatalf("encodeTimeline: %v", err)
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	want := map[string]string{
		"2026-09-01_100": "study",
		"2026-09-01_101": "study",
	}
	if len(flat) != len(want) {
		t.Fatalf("blob = %v, want %v", flat, want)
	}
	for key, id := range want {
		if flat[key] != id {
			t.Fatalf("blob[%q] = %q, want %q", key, flat[key], id)
		}
	}
}

func TestTimelineBlobRoundTrip(t *testing.T) {
	tl := NewTimeline()
	if err := tl.SetRange(testDay, 0, 5, "study"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	if err := tl.SetRange(Day("2026-09-02"), 1435, 1440, "game"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	data, err := encodeTimeline(tl)
	if err != nil {
		t.Fatalf("encodeTimeline: %v", err)
	}
	decoded, err := decodeTimeline(data)
	if err != nil {
		t.Fatalf("decodeTimeline: %v", err)
	}

	for minute := 0; minute < 5; minute++ {
		if got, _ := decoded.Get(testDay, minute); got != "study" {
			t.Fatalf("decoded minute %d = %q, want study", minute, got)
		}
	}
	if got, _ := decoded.Get(Day("2026-09-02"), 1439); got != "game" {
		t.Fatalf("decoded tail minute = %q, want game", got)
	}
	if got, _ := decoded.Get(testDay, 5); got != "" {
		t.Fatalf("decoded minute 5 = %q, want unassigned", got)
	}
}

func TestDecodeTimelineRejectsMalformedBlobs(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"not json", `not-json`},
		{"missing separator", `{"20260901":"study"}`},
		{"bad minute", `{"2026-09-01_abc":"study"}`},
		{"minute out of range", `{"2026-09-01_1440":"study"}`},
		{"empty id", `{"2026-09-01_10":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeTimeline([]byte(tc.blob)); err == nil {
				t.Fatalf("decodeTimeline(%q) succeeded, want error", tc.blob)
			}
		})
	}
}

func TestSessionBlobRoundTrip(t *testing.T) {
	started := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)
	session := Session{ActivityID: "study", StartedAt: started}

	data, err := encodeSession(session)
	if err != nil {
		t.Fatalf("encodeSession: %v", err)
	}

	// The blob keeps the legacy field names.
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal blob: %v", err)
	}
	if _, ok := raw["currentActivity"]; !ok {
		t.Fatalf("blob %s missing currentActivity field", data)
	}
	if _, ok := raw["startTime"]; !ok {
		t.Fatalf("blob %s missing startTime field", data)
	}

	decoded, err := decodeSession(data)
	if err != nil {
		t.Fatalf("decodeSession: %v", err)
	}
	if decoded.ActivityID != "study" {
		t.Fatalf("decoded ActivityID = %q, want study", decoded.ActivityID)
	}
	if !decoded.StartedAt.Equal(started) {
		t.Fatalf("decoded StartedAt = %v, want %v", decoded.StartedAt, started)
	}
}

func TestActivitiesBlobRoundTrip(t *testing.T) {
	catalog := DefaultCatalog()

	data, err := encodeActivities(catalog)
	if err != nil {
		t.Fatalf("encodeActivities: %v", err)
	}
	decoded, err := decodeActivities(data)
	if err != nil {
		t.Fatalf("decodeActivities: %v", err)
	}

	original := catalog.List()
	if len(decoded) != len(original) {
		t.Fatalf("decoded %d activities, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Fatalf("decoded[%d] = %+v, want %+v", i, decoded[i], original[i])
		}
	}
}
