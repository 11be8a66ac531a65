package tracker

import (
	"errors"
	"fmt"
	"time"

	"dayline/internal/store"
)

// Tracker is the application state: catalog, day timeline, and live session
// behind one synchronous mutation surface. Every mutating operation persists
// the affected blobs before returning, so callers never save explicitly.
// All methods must run to completion before the next external event is
// processed; there is no internal locking.
type Tracker struct {
	store    store.Store
	catalog  *Catalog
	timeline *Timeline
	session  Session

	now func() time.Time
}

// ToggleOutcome tells the caller which transition a Toggle performed.
type ToggleOutcome uint8

const (
	// ToggleStarted means the session went from idle to running.
	ToggleStarted ToggleOutcome = iota
	// ToggleStopped means the running session was committed and cleared.
	ToggleStopped
	// ToggleSwitched means one session was committed and another started.
	ToggleSwitched
)

// Load restores tracker state from the store. A fresh store is seeded with
// the default catalog. A persisted live session is reconciled: discarded if
// its activity vanished, truncated at midnight if it began on an earlier
// day, kept running if it began today.
func Load(st store.Store) (*Tracker, error) {
	return load(st, time.Now)
}

func load(st store.Store, now func() time.Time) (*Tracker, error) {
	t := &Tracker{
		store:    st,
		catalog:  NewCatalog(),
		timeline: NewTimeline(),
		now:      now,
	}

	data, err := st.Read(keyActivities)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		t.catalog = DefaultCatalog()
		if err := t.saveCatalog(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		activities, err := decodeActivities(data)
		if err != nil {
			return nil, err
		}
		t.catalog.Replace(activities)
	}

	if data, err := st.Read(keyTimeline); err == nil {
		timeline, err := decodeTimeline(data)
		if err != nil {
			return nil, err
		}
		t.timeline = timeline
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		return nil, err
	}

	if data, err := st.Read(keySession); err == nil {
		session, err := decodeSession(data)
		if err != nil {
			return nil, err
		}
		t.session = session
		if err := t.reconcileSession(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		return nil, err
	}

	return t, nil
}

// reconcileSession applies the restore policy to a persisted live session.
func (t *Tracker) reconcileSession() error {
	if !t.session.Running() {
		return nil
	}

	if _, ok := t.catalog.Get(t.session.ActivityID); !ok {
		// The label is gone; the recording is unrecoverable.
		t.session = Session{}
		return t.saveSession()
	}

	if t.session.StartDay() != DayOf(t.now()) {
		if err := t.session.commitThroughEndOfDay(t.timeline); err != nil {
			return err
		}
		t.session = Session{}
		if err := t.saveTimeline(); err != nil {
			return err
		}
		return t.saveSession()
	}

	return nil
}

// Activities returns the catalog in insertion order.
func (t *Tracker) Activities() []Activity {
	return t.catalog.List()
}

// Activity looks up one activity by id.
func (t *Tracker) Activity(id string) (Activity, bool) {
	return t.catalog.Get(id)
}

// AddActivity creates a new catalog entry.
func (t *Tracker) AddActivity(name, color string) (Activity, error) {
	activity, err := t.catalog.Add(name, color)
	if err != nil {
		return Activity{}, err
	}
	return activity, t.saveCatalog()
}

// EditActivity renames or recolors an existing entry in place.
func (t *Tracker) EditActivity(id, name, color string) (Activity, error) {
	activity, err := t.catalog.Edit(id, name, color)
	if err != nil {
		return Activity{}, err
	}
	return activity, t.saveCatalog()
}

// DeleteActivity removes the activity and everything referencing it: a live
// session on the id is force-stopped with its elapsed span committed first,
// then every timeline minute holding the id is cleared, then the record is
// purged.
func (t *Tracker) DeleteActivity(id string) error {
	if _, ok := t.catalog.Get(id); !ok {
		return ErrActivityNotFound
	}

	if t.session.ActivityID == id {
		if _, err := t.Stop(); err != nil {
			return err
		}
	}

	t.timeline.ClearActivity(id)
	if _, err := t.catalog.Remove(id); err != nil {
		return err
	}

	if err := t.saveCatalog(); err != nil {
		return err
	}
	return t.saveTimeline()
}

// Toggle applies the activity-button protocol: idle starts the activity,
// the running activity stops, any other running activity is stopped and
// the requested one started.
func (t *Tracker) Toggle(id string) (ToggleOutcome, error) {
	if _, ok := t.catalog.Get(id); !ok {
		return 0, ErrActivityNotFound
	}

	switch {
	case !t.session.Running():
		return ToggleStarted, t.Start(id)
	case t.session.ActivityID == id:
		_, err := t.Stop()
		return ToggleStopped, err
	default:
		if _, err := t.Stop(); err != nil {
			return 0, err
		}
		return ToggleSwitched, t.Start(id)
	}
}

// Start begins recording the activity at the current instant. A session
// already running is stopped and committed first.
func (t *Tracker) Start(id string) error {
	if _, ok := t.catalog.Get(id); !ok {
		return ErrActivityNotFound
	}
	if t.session.Running() {
		if _, err := t.Stop(); err != nil {
			return err
		}
	}

	t.session = Session{ActivityID: id, StartedAt: t.now()}
	return t.saveSession()
}

// Stop commits the running session's elapsed span and returns to idle. The
// span is committed fill-if-empty on the start day; a session stopped
// within its starting minute commits nothing. Stopping while idle is a
// no-op and returns a zero session.
func (t *Tracker) Stop() (Session, error) {
	if !t.session.Running() {
		return Session{}, nil
	}

	stopped := t.session
	now := t.now()
	var err error
	if stopped.StartDay() != DayOf(now) {
		// The session outlived its start day; truncate at midnight.
		err = stopped.commitThroughEndOfDay(t.timeline)
	} else {
		err = stopped.commitUntil(t.timeline, now)
	}
	if err != nil {
		return Session{}, err
	}

	t.session = Session{}
	if err := t.saveTimeline(); err != nil {
		return Session{}, err
	}
	return stopped, t.saveSession()
}

// Session returns the live session; the zero value means idle.
func (t *Tracker) Session() Session {
	return t.session
}

// ApplyRangeEdit assigns [startMinute, endMinute) of the day to the
// activity, or clears the span when id is empty. The edit is authoritative:
// existing assignments inside the span are overwritten. When the edit
// covers a live session's start minute on its own day, the session's
// elapsed span is committed first and the session cleared, then the edit
// applies on top.
func (t *Tracker) ApplyRangeEdit(day Day, startMinute, endMinute int, id string) error {
	if startMinute > endMinute {
		return ErrStartAfterEnd
	}
	if startMinute < 0 || endMinute > MinutesPerDay {
		return fmt.Errorf("range edit [%d,%d): %w", startMinute, endMinute, ErrMinuteOutOfRange)
	}
	if id != "" {
		if _, ok := t.catalog.Get(id); !ok {
			return ErrActivityNotFound
		}
	}

	if t.session.Running() && day == t.session.StartDay() {
		sessionStart := MinuteOf(t.session.StartedAt)
		if startMinute <= sessionStart && sessionStart < endMinute {
			if _, err := t.Stop(); err != nil {
				return err
			}
		}
	}

	if err := t.timeline.SetRange(day, startMinute, endMinute, id); err != nil {
		return err
	}
	return t.saveTimeline()
}

// MinuteActivity returns the activity id assigned to the minute, "" when
// unassigned.
func (t *Tracker) MinuteActivity(day Day, minute int) (string, error) {
	return t.timeline.Get(day, minute)
}

// RunAt snaps a minute to the maximal contiguous block of its activity.
func (t *Tracker) RunAt(day Day, minute int) (Run, bool, error) {
	return t.timeline.FindRun(day, minute)
}

// Runs lists the day's assigned spans in minute order.
func (t *Tracker) Runs(day Day) []Run {
	return t.timeline.Runs(day)
}

// DayMinutes returns a copy of the day's minute assignments for rendering.
func (t *Tracker) DayMinutes(day Day) map[int]string {
	return t.timeline.DayMinutes(day)
}

// Totals aggregates the day's committed minutes per activity, plus the live
// session's elapsed minutes when it runs on that day.
func (t *Tracker) Totals(day Day) Totals {
	return ComputeTotals(day, t.timeline, t.catalog, t.session, t.now())
}

// StatLines returns the day's non-zero totals in display order.
func (t *Tracker) StatLines(day Day) []StatLine {
	return t.Totals(day).NonZero(t.catalog)
}

// Today returns the current local day.
func (t *Tracker) Today() Day {
	return DayOf(t.now())
}

// Now exposes the tracker clock for display computations.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) saveCatalog() error {
	data, err := encodeActivities(t.catalog)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return t.store.Write(keyActivities, data)
}

func (t *Tracker) saveTimeline() error {
	data, err := encodeTimeline(t.timeline)
	if err != nil {
		return fmt.Errorf("save timeline: %w", err)
	}
	return t.store.Write(keyTimeline, data)
}

func (t *Tracker) saveSession() error {
	if !t.session.Running() {
		return t.store.Delete(keySession)
	}
	data, err := encodeSession(t.session)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return t.store.Write(keySession, data)
}
