package attendance

import (
	"context"
	"time"

	"github.com/LutherIcami/workforce/internal/store"
)

type Repository interface {
	Store(ctx context.Context, entry TimeEntry) error
	Update(ctx context.Context, entry TimeEntry) error
	FindOpenForUser(ctx context.Context, userID string) ([]TimeEntry, error)
	FindForUser(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]TimeEntry, error)
}

type repositoryImpl struct {
	entries *store.Store[TimeEntry]
}

func NewRepository() Repository {
	return &repositoryImpl{entries: store.New[TimeEntry]()}
}

func (r *repositoryImpl) Store(ctx context.Context, entry TimeEntry) error {
	return r.entries.Create(entry)
}

func (r *repositoryImpl) Update(ctx context.Context, entry TimeEntry) error {
	r.entries.Update(entry)
	return nil
}

func (r *repositoryImpl) FindOpenForUser(ctx context.Context, userID string) ([]TimeEntry, error) {
	return r.entries.Filter(func(e TimeEntry) bool {
		return e.UserID == userID && e.IsOpen()
	}), nil
}

func (r *repositoryImpl) FindForUser(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error) {
	return r.entries.Filter(func(e TimeEntry) bool {
		return e.UserID == userID && dateWithin(e.Date, from, to)
	}), nil
}

func (r *repositoryImpl) FindInRange(ctx context.Context, from, to time.Time) ([]TimeEntry, error) {
	return r.entries.Filter(func(e TimeEntry) bool {
		return dateWithin(e.Date, from, to)
	}), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateWithin compares calendar dates, not timestamps: an entry from 23:59
// still belongs to that day. Both ends of the range are inclusive.
func dateWithin(t, from, to time.Time) bool {
	d := dateOnly(t)
	return !d.Before(dateOnly(from)) && !d.After(dateOnly(to))
}
