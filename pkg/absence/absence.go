package absence

import (
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
)

const (
	EventRequested     event_bus.EventType = "absence.requested"
	EventStatusChanged event_bus.EventType = "absence.status_changed"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Absence is a request to be away from work for an inclusive date range.
// It starts PENDING and is finalized exactly once, to APPROVED or REJECTED.
type Absence struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status
}

func (a Absence) RecordID() string {
	return a.ID
}

// Clone returns a copy of the absence. All fields are value types, so the
// struct copy is already independent.
func (a Absence) Clone() Absence {
	return a
}
