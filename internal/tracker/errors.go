package tracker

import "errors"

// ErrEmptyName rejects activity names that are blank after trimming.
var ErrEmptyName = errors.New("activity name must not be empty")

// ErrBadColor rejects colors that do not parse as #rrggbb hex.
var ErrBadColor = errors.New("activity color must be a hex color")

// ErrDuplicateName is returned when another activity already uses the name.
var ErrDuplicateName = errors.New("activity name already in use")

// ErrActivityNotFound indicates the referenced activity id no longer exists.
// Callers should treat it as recoverable and re-render from current state.
var ErrActivityNotFound = errors.New("activity not found")

// ErrStartAfterEnd rejects a manual range edit whose start time is later
// than its end time.
var ErrStartAfterEnd = errors.New("start time must not be after end time")

// ErrMinuteOutOfRange indicates a minute index or range outside [0,1440).
// This is a caller contract violation, never clamped: clamping could
// silently write a different minute than intended.
var ErrMinuteOutOfRange = errors.New("minute outside the day")
