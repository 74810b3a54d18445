package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("project not found")

type Service interface {
	Create(ctx context.Context, project Project) (Project, error)
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	ListByStatus(ctx context.Context, status Status) ([]Project, error)
	ListByManager(ctx context.Context, managerID string) ([]Project, error)
	ListByTeamMember(ctx context.Context, userID string) ([]Project, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Project, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Project, error)
}

type ServiceImpl struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Create(ctx context.Context, project Project) (Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if err := s.repo.Store(ctx, project); err != nil {
		return Project{}, fmt.Errorf("failed to store project: %w", err)
	}
	log.Debugf("Created project %s (%s)", project.ID, project.Name)

	s.publish(ctx, project)
	return project, nil
}

// Update replaces the project with the matching id. Updating a missing id
// is a no-op, not an error.
func (s *ServiceImpl) Update(ctx context.Context, project Project) error {
	if err := s.repo.Update(ctx, project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	s.publish(ctx, project)
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		log.Debugf("Project %s not deleted, it does not exist", id)
		return nil
	}
	s.publish(ctx, Project{ID: id})
	return nil
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (Project, error) {
	project, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if !found {
		return Project{}, ErrNotFound
	}
	return project, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]Project, error) {
	return s.repo.FindAll(ctx)
}

func (s *ServiceImpl) ListByStatus(ctx context.Context, status Status) ([]Project, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *ServiceImpl) ListByManager(ctx context.Context, managerID string) ([]Project, error) {
	return s.repo.FindByManager(ctx, managerID)
}

func (s *ServiceImpl) ListByTeamMember(ctx context.Context, userID string) ([]Project, error) {
	return s.repo.FindByTeamMember(ctx, userID)
}

func (s *ServiceImpl) ListByCustomer(ctx context.Context, customerID string) ([]Project, error) {
	return s.repo.FindByCustomer(ctx, customerID)
}

func (s *ServiceImpl) ListByDateRange(ctx context.Context, from, to time.Time) ([]Project, error) {
	return s.repo.FindByDateRange(ctx, from, to)
}

func (s *ServiceImpl) publish(ctx context.Context, project Project) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, EventChanged, project)); err != nil {
		log.Warnf("Failed to notify subscribers of %s: %v", EventChanged, err)
	}
}
