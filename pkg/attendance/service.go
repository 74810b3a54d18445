package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LutherIcami/workforce/internal/utils"
	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrAlreadyClockedIn = errors.New("user already has an open time entry")
	ErrNoOpenEntry      = errors.New("no open time entry for user")
)

type Service interface {
	ClockIn(ctx context.Context, userID string) (TimeEntry, error)
	ClockOut(ctx context.Context, userID string) (TimeEntry, error)
	EntriesForUser(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)
	Entries(ctx context.Context, from, to time.Time) ([]TimeEntry, error)
	OpenEntry(ctx context.Context, userID string) (*TimeEntry, error)
}

type ServiceImpl struct {
	// mu makes the open-entry check and the following write one atomic
	// step, so two concurrent clock-ins cannot both pass the check.
	mu    sync.Mutex
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: &utils.SystemClock{}}
}

// NewServiceWithClock injects the clock; production code uses NewService so
// timestamps always come from the system clock.
func NewServiceWithClock(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

// ClockIn opens a new time entry for the user, stamped with the current
// time. A user with an open entry cannot clock in again.
func (s *ServiceImpl) ClockIn(ctx context.Context, userID string) (TimeEntry, error) {
	entry, err := s.clockIn(ctx, userID)
	if err != nil {
		return TimeEntry{}, err
	}
	// Published outside the lock so subscribers may call back into the
	// service without deadlocking.
	s.publish(ctx, EventClockedIn, entry)
	return entry, nil
}

func (s *ServiceImpl) clockIn(ctx context.Context, userID string) (TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.repo.FindOpenForUser(ctx, userID)
	if err != nil {
		return TimeEntry{}, fmt.Errorf("failed to look up open entries: %w", err)
	}
	if len(open) > 0 {
		log.Debugf("User %s attempted to clock in while already clocked in", userID)
		return TimeEntry{}, ErrAlreadyClockedIn
	}

	now := s.clock.Now()
	entry := TimeEntry{
		ID:      uuid.NewString(),
		UserID:  userID,
		ClockIn: now,
		Date:    now,
	}
	if err := s.repo.Store(ctx, entry); err != nil {
		return TimeEntry{}, fmt.Errorf("failed to store time entry: %w", err)
	}
	log.Debugf("User %s clocked in at %s", userID, now)
	return entry, nil
}

// ClockOut closes the user's open entry and records the hours worked. When
// multiple open entries exist (possible only after an earlier invariant
// violation), the one with the latest clock-in wins; ties go to the most
// recently created.
func (s *ServiceImpl) ClockOut(ctx context.Context, userID string) (TimeEntry, error) {
	entry, err := s.clockOut(ctx, userID)
	if err != nil {
		return TimeEntry{}, err
	}
	s.publish(ctx, EventClockedOut, entry)
	return entry, nil
}

func (s *ServiceImpl) clockOut(ctx context.Context, userID string) (TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.repo.FindOpenForUser(ctx, userID)
	if err != nil {
		return TimeEntry{}, fmt.Errorf("failed to look up open entries: %w", err)
	}
	if len(open) == 0 {
		log.Debugf("User %s attempted to clock out with no open entry", userID)
		return TimeEntry{}, ErrNoOpenEntry
	}

	entry := open[0]
	for _, candidate := range open[1:] {
		if !candidate.ClockIn.Before(entry.ClockIn) {
			entry = candidate
		}
	}

	now := s.clock.Now()
	hours := hoursBetween(entry.ClockIn, now)
	entry.ClockOut = &now
	entry.HoursWorked = &hours
	if err := s.repo.Update(ctx, entry); err != nil {
		return TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}
	log.Debugf("User %s clocked out at %s (%.2f hours)", userID, now, hours)
	return entry, nil
}

// EntriesForUser returns the user's entries whose calendar date falls in
// the inclusive [from, to] range.
func (s *ServiceImpl) EntriesForUser(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error) {
	return s.repo.FindForUser(ctx, userID, from, to)
}

// Entries returns all entries of all users within the inclusive date range.
func (s *ServiceImpl) Entries(ctx context.Context, from, to time.Time) ([]TimeEntry, error) {
	return s.repo.FindInRange(ctx, from, to)
}

// OpenEntry returns the user's current open entry, or nil when the user is
// clocked out.
func (s *ServiceImpl) OpenEntry(ctx context.Context, userID string) (*TimeEntry, error) {
	open, err := s.repo.FindOpenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}
	entry := open[len(open)-1]
	return &entry, nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, entry TimeEntry) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, entry)); err != nil {
		log.Warnf("Failed to notify subscribers of %s: %v", eventType, err)
	}
}

// hoursBetween counts whole elapsed minutes and converts them to fractional
// hours. Seconds below a full minute do not count.
func hoursBetween(from, to time.Time) float64 {
	return float64(to.Sub(from)/time.Minute) / 60.0
}
