package tracker

import (
	"testing"
	"time"
)

func seededCatalog(t *testing.T) *Catalog {
	t.Helper()
	return DefaultCatalog()
}

func TestComputeTotalsCountsCommittedMinutes(t *testing.T) {
	catalog := seededCatalog(t)
	tl := NewTimeline()

	if err := tl.SetRange(testDay, 100, 160, "default"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	if err := tl.SetRange(testDay, 200, 215, "game"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	totals := ComputeTotals(testDay, tl, catalog, Session{}, time.Now())
	if totals["default"] != 60 || totals["game"] != 15 || totals["rest"] != 0 {
		t.Fatalf("totals = %v, want Study 60 Game 15 Rest 0", totals)
	}

	// With no live session, counted minutes equal assigned minutes exactly.
	sum := 0
	for _, minutes := range totals {
		sum += minutes
	}
	if sum != tl.AssignedMinutes(testDay) {
		t.Fatalf("totals sum = %d, want %d assigned minutes", sum, tl.AssignedMinutes(testDay))
	}
}

func TestComputeTotalsAddsDisjointLiveEstimate(t *testing.T) {
	catalog := seededCatalog(t)
	tl := NewTimeline()

	if err := tl.SetRange(testDay, 0, 40, "default"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	start := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.Local)
	now := start.Add(25 * time.Minute)
	session := Session{ActivityID: "default", StartedAt: start}

	totals := ComputeTotals(testDay, tl, catalog, session, now)
	if totals["default"] != 65 {
		t.Fatalf("Study total = %d, want 40 committed + 25 live", totals["default"])
	}
}

func TestComputeTotalsIgnoresLiveSessionOnOtherDay(t *testing.T) {
	catalog := seededCatalog(t)
	tl := NewTimeline()

	start := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.Local)
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.Local)
	session := Session{ActivityID: "default", StartedAt: start}

	totals := ComputeTotals(testDay, tl, catalog, session, now)
	if totals["default"] != 0 {
		t.Fatalf("Study total = %d, want 0 for a session begun yesterday", totals["default"])
	}
}

func TestComputeTotalsSkipsUnknownIDs(t *testing.T) {
	catalog := seededCatalog(t)
	tl := NewTimeline()

	// A stray id that is not in the catalog must not invent an activity.
	if err := tl.SetRange(testDay, 0, 10, "ghost"); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	totals := ComputeTotals(testDay, tl, catalog, Session{}, time.Now())
	if _, present := totals["ghost"]; present {
		t.Fatal("unknown id appeared in totals")
	}
}

func TestNonZeroFollowsCatalogOrder(t *testing.T) {
	catalog := seededCatalog(t)
	totals := Totals{"default": 0, "game": 30, "rest": 90}

	lines := totals.NonZero(catalog)
	if len(lines) != 2 {
		t.Fatalf("NonZero length = %d, want 2", len(lines))
	}
	if lines[0].Activity.ID != "game" || lines[1].Activity.ID != "rest" {
		t.Fatalf("NonZero order = %+v, want catalog order game then rest", lines)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h 00m"},
		{5, "0h 05m"},
		{60, "1h 00m"},
		{125, "2h 05m"},
		{1439, "23h 59m"},
	}

	for _, tc := range cases {
		if got := FormatMinutes(tc.minutes); got != tc.want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestDayProgress(t *testing.T) {
	noon := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	if got := DayProgress(noon); got != 0.5 {
		t.Fatalf("DayProgress(noon) = %v, want 0.5", got)
	}

	midnight := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	if got := DayProgress(midnight); got != 0 {
		t.Fatalf("DayProgress(midnight) = %v, want 0", got)
	}

	lastSecond := time.Date(2026, time.September, 1, 23, 59, 59, 0, time.Local)
	if got := DayProgress(lastSecond); got >= 1 {
		t.Fatalf("DayProgress(23:59:59) = %v, want < 1", got)
	}
}

func TestMinuteOfAndDayOf(t *testing.T) {
	instant := time.Date(2026, time.September, 1, 13, 7, 45, 0, time.Local)
	if got := MinuteOf(instant); got != 13*60+7 {
		t.Fatalf("MinuteOf = %d, want %d", got, 13*60+7)
	}
	if got := DayOf(instant); got != Day("2026-09-01") {
		t.Fatalf("DayOf = %q, want 2026-09-01", got)
	}
}
