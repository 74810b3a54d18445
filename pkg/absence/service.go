package absence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidRange     = errors.New("absence end date is before start date")
	ErrEmptyReason      = errors.New("absence reason must not be empty")
	ErrAlreadyFinalized = errors.New("absence status is already final")
	ErrNotFound         = errors.New("absence not found")
)

type Service interface {
	Request(ctx context.Context, userID string, startDate, endDate time.Time, reason string) (Absence, error)
	UpdateStatus(ctx context.Context, id string, newStatus Status) (Absence, error)
	ForUser(ctx context.Context, userID string) ([]Absence, error)
	Pending(ctx context.Context) ([]Absence, error)
}

type ServiceImpl struct {
	// mu keeps the status check and the following write atomic, so a
	// finalized absence cannot be finalized twice by racing reviewers.
	mu   sync.Mutex
	repo Repository
	bus  *event_bus.EventBus
	// allowStatusOverride permits re-transitioning a finalized absence
	// (administrative override). Off by default.
	allowStatusOverride bool
}

func NewService(repo Repository, bus *event_bus.EventBus, allowStatusOverride bool) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, allowStatusOverride: allowStatusOverride}
}

// Request validates and stores a new absence request in PENDING state. The
// workflow re-validates even when the caller already did: it is the
// authority on these rules.
func (s *ServiceImpl) Request(ctx context.Context, userID string, startDate, endDate time.Time, reason string) (Absence, error) {
	if dateOnly(endDate).Before(dateOnly(startDate)) {
		return Absence{}, ErrInvalidRange
	}
	if strings.TrimSpace(reason) == "" {
		return Absence{}, ErrEmptyReason
	}

	absence := Absence{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
		Status:    StatusPending,
	}
	if err := s.repo.Store(ctx, absence); err != nil {
		return Absence{}, fmt.Errorf("failed to store absence: %w", err)
	}
	log.Debugf("User %s requested absence %s (%s - %s)", userID, absence.ID, startDate, endDate)

	s.publish(ctx, EventRequested, absence)
	return absence, nil
}

// UpdateStatus finalizes a pending absence. Transitions out of a terminal
// status fail with ErrAlreadyFinalized unless the administrative override
// is enabled.
func (s *ServiceImpl) UpdateStatus(ctx context.Context, id string, newStatus Status) (Absence, error) {
	absence, err := s.updateStatus(ctx, id, newStatus)
	if err != nil {
		return Absence{}, err
	}
	// Published outside the lock so subscribers may call back into the
	// service without deadlocking.
	s.publish(ctx, EventStatusChanged, absence)
	return absence, nil
}

func (s *ServiceImpl) updateStatus(ctx context.Context, id string, newStatus Status) (Absence, error) {
	if !newStatus.IsTerminal() {
		return Absence{}, fmt.Errorf("cannot transition absence to status %q", newStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	absence, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Absence{}, fmt.Errorf("failed to look up absence: %w", err)
	}
	if !found {
		return Absence{}, ErrNotFound
	}
	if absence.Status.IsTerminal() {
		if !s.allowStatusOverride {
			return Absence{}, ErrAlreadyFinalized
		}
		log.Warnf("Overriding final status of absence %s: %s -> %s", id, absence.Status, newStatus)
	}

	absence.Status = newStatus
	if err := s.repo.Update(ctx, absence); err != nil {
		return Absence{}, fmt.Errorf("failed to update absence: %w", err)
	}
	log.Debugf("Absence %s is now %s", id, newStatus)
	return absence, nil
}

// ForUser returns the user's absence requests in the order they were made.
func (s *ServiceImpl) ForUser(ctx context.Context, userID string) ([]Absence, error) {
	return s.repo.FindForUser(ctx, userID)
}

// Pending returns all requests still awaiting review.
func (s *ServiceImpl) Pending(ctx context.Context) ([]Absence, error) {
	return s.repo.FindByStatus(ctx, StatusPending)
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, absence Absence) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, absence)); err != nil {
		log.Warnf("Failed to notify subscribers of %s: %v", eventType, err)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
