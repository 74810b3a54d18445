package project

import (
	"slices"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
)

const EventChanged event_bus.EventType = "project.changed"

type Status string

const (
	StatusPlanning   Status = "PLANNING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

type Project struct {
	ID          string
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Budget      float64
	SpentAmount float64
	ManagerID   string
	CustomerID  string
	TeamMembers []string
}

func (p Project) RecordID() string {
	return p.ID
}

// Clone returns a copy sharing no mutable state with the receiver.
func (p Project) Clone() Project {
	clone := p
	clone.TeamMembers = slices.Clone(p.TeamMembers)
	return clone
}
