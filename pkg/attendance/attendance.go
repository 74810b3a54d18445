package attendance

import (
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
)

const (
	EventClockedIn  event_bus.EventType = "attendance.clocked_in"
	EventClockedOut event_bus.EventType = "attendance.clocked_out"
)

// TimeEntry is a single work session. An entry with no ClockOut is "open":
// the user is currently clocked in. HoursWorked is set together with
// ClockOut, never independently.
type TimeEntry struct {
	ID          string
	UserID      string
	ClockIn     time.Time
	ClockOut    *time.Time
	HoursWorked *float64
	// Date is the calendar day the entry is reported under.
	// Defaults to the clock-in timestamp.
	Date time.Time
}

func (t TimeEntry) RecordID() string {
	return t.ID
}

// Clone returns a copy sharing no mutable state with the receiver.
func (t TimeEntry) Clone() TimeEntry {
	clone := t
	if t.ClockOut != nil {
		clockOut := *t.ClockOut
		clone.ClockOut = &clockOut
	}
	if t.HoursWorked != nil {
		hours := *t.HoursWorked
		clone.HoursWorked = &hours
	}
	return clone
}

// IsOpen reports whether the user is still clocked in on this entry.
func (t TimeEntry) IsOpen() bool {
	return t.ClockOut == nil
}
