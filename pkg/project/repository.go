package project

import (
	"context"
	"slices"
	"time"

	"github.com/LutherIcami/workforce/internal/store"
)

type Repository interface {
	Store(ctx context.Context, project Project) error
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (Project, bool, error)
	FindAll(ctx context.Context) ([]Project, error)
	FindByStatus(ctx context.Context, status Status) ([]Project, error)
	FindByManager(ctx context.Context, managerID string) ([]Project, error)
	FindByTeamMember(ctx context.Context, userID string) ([]Project, error)
	FindByCustomer(ctx context.Context, customerID string) ([]Project, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Project, error)
}

type repositoryImpl struct {
	projects *store.Store[Project]
}

func NewRepository() Repository {
	return &repositoryImpl{projects: store.New[Project]()}
}

func (r *repositoryImpl) Store(ctx context.Context, project Project) error {
	return r.projects.Create(project)
}

func (r *repositoryImpl) Update(ctx context.Context, project Project) error {
	r.projects.Update(project)
	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.projects.Remove(id), nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (Project, bool, error) {
	project, ok := r.projects.FindByID(id)
	return project, ok, nil
}

func (r *repositoryImpl) FindAll(ctx context.Context) ([]Project, error) {
	return r.projects.FindAll(), nil
}

func (r *repositoryImpl) FindByStatus(ctx context.Context, status Status) ([]Project, error) {
	return r.projects.Filter(func(p Project) bool {
		return p.Status == status
	}), nil
}

func (r *repositoryImpl) FindByManager(ctx context.Context, managerID string) ([]Project, error) {
	return r.projects.Filter(func(p Project) bool {
		return p.ManagerID == managerID
	}), nil
}

func (r *repositoryImpl) FindByTeamMember(ctx context.Context, userID string) ([]Project, error) {
	return r.projects.Filter(func(p Project) bool {
		return slices.Contains(p.TeamMembers, userID)
	}), nil
}

func (r *repositoryImpl) FindByCustomer(ctx context.Context, customerID string) ([]Project, error) {
	return r.projects.Filter(func(p Project) bool {
		return p.CustomerID == customerID
	}), nil
}

// FindByDateRange returns projects that run entirely inside [from, to].
func (r *repositoryImpl) FindByDateRange(ctx context.Context, from, to time.Time) ([]Project, error) {
	return r.projects.Filter(func(p Project) bool {
		return !p.StartDate.Before(from) && !p.EndDate.After(to)
	}), nil
}
