package absence

import (
	"context"

	"github.com/LutherIcami/workforce/internal/store"
)

type Repository interface {
	Store(ctx context.Context, absence Absence) error
	Update(ctx context.Context, absence Absence) error
	FindByID(ctx context.Context, id string) (Absence, bool, error)
	FindForUser(ctx context.Context, userID string) ([]Absence, error)
	FindByStatus(ctx context.Context, status Status) ([]Absence, error)
}

type repositoryImpl struct {
	absences *store.Store[Absence]
}

func NewRepository() Repository {
	return &repositoryImpl{absences: store.New[Absence]()}
}

func (r *repositoryImpl) Store(ctx context.Context, absence Absence) error {
	return r.absences.Create(absence)
}

func (r *repositoryImpl) Update(ctx context.Context, absence Absence) error {
	r.absences.Update(absence)
	return nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (Absence, bool, error) {
	absence, ok := r.absences.FindByID(id)
	return absence, ok, nil
}

func (r *repositoryImpl) FindForUser(ctx context.Context, userID string) ([]Absence, error) {
	return r.absences.Filter(func(a Absence) bool {
		return a.UserID == userID
	}), nil
}

func (r *repositoryImpl) FindByStatus(ctx context.Context, status Status) ([]Absence, error) {
	return r.absences.Filter(func(a Absence) bool {
		return a.Status == status
	}), nil
}
