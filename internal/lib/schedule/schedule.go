// Package schedule keeps all class timestamps on a single timeline: the
// studio timezone (IST, no daylight-saving transitions). Client-supplied
// times with any offset are converted, naive times are assumed to be IST.
package schedule

import (
	"errors"
	"time"
	_ "time/tzdata"
)

const zoneName = "Asia/Kolkata"

// naiveLayout accepts timestamps without an offset, e.g. "2099-01-01T09:00:00".
const naiveLayout = "2006-01-02T15:04:05"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var studioZone = func() *time.Location {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		panic("schedule: load studio timezone: " + err.Error())
	}

	return loc
}()

// Zone returns the studio timezone.
func Zone() *time.Location {
	return studioZone
}

// Now returns the current instant in the studio timezone.
func Now() time.Time {
	return time.Now().In(studioZone)
}

// Parse reads an RFC3339 timestamp with any offset, or a naive timestamp
// which is interpreted as studio time. The result is normalized to the
// studio timezone. Returns ErrInvalidTimestamp for anything unparsable.
func Parse(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Normalize(t), nil
	}

	if t, err := time.ParseInLocation(naiveLayout, value, studioZone); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidTimestamp
}

// Normalize converts t to the studio timezone, preserving the instant.
func Normalize(t time.Time) time.Time {
	return t.In(studioZone)
}

// IsPast reports whether t is at or before the current studio time.
func IsPast(t time.Time) bool {
	return !Normalize(t).After(Now())
}
