package project

import (
	"context"
	"testing"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*ServiceImpl, context.Context) {
	service := NewService(NewRepository(), event_bus.NewEventBus())
	return service, context.Background()
}

func sampleProject(name string) Project {
	return Project{
		Name:        name,
		Description: "sample",
		StartDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		Status:      StatusInProgress,
		Budget:      10000,
		ManagerID:   "manager-1",
		CustomerID:  "customer-1",
		TeamMembers: []string{"user-1", "user-2"},
	}
}

func TestCreate(t *testing.T) {

	t.Run("should assign an id when none is given", func(t *testing.T) {
		service, ctx := setupServiceTest(t)

		created, err := service.Create(ctx, sampleProject("Website"))

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		found, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Website", found.Name)
	})

	t.Run("should keep a caller-provided id", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		p := sampleProject("Website")
		p.ID = "proj-1"

		created, err := service.Create(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, "proj-1", created.ID)
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		p := sampleProject("Website")
		p.ID = "proj-1"
		_, err := service.Create(ctx, p)
		require.NoError(t, err)

		_, err = service.Create(ctx, p)

		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {

	t.Run("should replace an existing project", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		created, err := service.Create(ctx, sampleProject("Website"))
		require.NoError(t, err)

		created.Status = StatusCompleted
		created.SpentAmount = 8000
		err = service.Update(ctx, created)

		require.NoError(t, err)
		found, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, found.Status)
		assert.Equal(t, 8000.0, found.SpentAmount)
	})

	t.Run("should be a no-op for an unknown id", func(t *testing.T) {
		service, ctx := setupServiceTest(t)

		err := service.Update(ctx, Project{ID: "missing", Name: "Ghost"})

		require.NoError(t, err)
		all, err := service.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestGet(t *testing.T) {

	t.Run("mutating a returned team member list does not alter the stored project", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		created, err := service.Create(ctx, sampleProject("Website"))
		require.NoError(t, err)

		got, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		got.TeamMembers[0] = "intruder"

		again, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1", "user-2"}, again.TeamMembers)
	})
}

func TestDelete(t *testing.T) {

	t.Run("should remove the project", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		created, err := service.Create(ctx, sampleProject("Website"))
		require.NoError(t, err)

		err = service.Delete(ctx, created.ID)

		require.NoError(t, err)
		_, err = service.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListFilters(t *testing.T) {

	t.Run("should filter by status, manager, team member and customer", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		first := sampleProject("Website")
		second := sampleProject("Mobile App")
		second.Status = StatusCompleted
		second.ManagerID = "manager-2"
		second.CustomerID = "customer-2"
		second.TeamMembers = []string{"user-3"}
		_, err := service.Create(ctx, first)
		require.NoError(t, err)
		_, err = service.Create(ctx, second)
		require.NoError(t, err)

		inProgress, err := service.ListByStatus(ctx, StatusInProgress)
		require.NoError(t, err)
		require.Len(t, inProgress, 1)
		assert.Equal(t, "Website", inProgress[0].Name)

		byManager, err := service.ListByManager(ctx, "manager-2")
		require.NoError(t, err)
		require.Len(t, byManager, 1)
		assert.Equal(t, "Mobile App", byManager[0].Name)

		byMember, err := service.ListByTeamMember(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, byMember, 1)
		assert.Equal(t, "Website", byMember[0].Name)

		byCustomer, err := service.ListByCustomer(ctx, "customer-2")
		require.NoError(t, err)
		require.Len(t, byCustomer, 1)
		assert.Equal(t, "Mobile App", byCustomer[0].Name)
	})

	t.Run("should filter by date range", func(t *testing.T) {
		service, ctx := setupServiceTest(t)
		inside := sampleProject("Inside")
		outside := sampleProject("Outside")
		outside.EndDate = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
		_, err := service.Create(ctx, inside)
		require.NoError(t, err)
		_, err = service.Create(ctx, outside)
		require.NoError(t, err)

		result, err := service.ListByDateRange(ctx,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Inside", result[0].Name)
	})
}
