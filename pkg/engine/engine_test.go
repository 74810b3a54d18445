package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LutherIcami/workforce/internal/utils"
	"github.com/LutherIcami/workforce/pkg/absence"
	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/LutherIcami/workforce/pkg/financial"
	"github.com/LutherIcami/workforce/pkg/project"
	"github.com/LutherIcami/workforce/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine(t *testing.T) {

	t.Run("should run a full attendance day end to end", func(t *testing.T) {
		clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC)}
		engine, err := New(WithClock(clock))
		require.NoError(t, err)
		ctx := context.Background()

		_, err = engine.Attendance().ClockIn(ctx, "user-1")
		require.NoError(t, err)
		clock.Advance(8*time.Hour + 30*time.Minute)
		entry, err := engine.Attendance().ClockOut(ctx, "user-1")
		require.NoError(t, err)

		assert.Equal(t, 8.5, *entry.HoursWorked)
		result, err := engine.Stats().AttendanceStatistics(ctx, clock.Now().AddDate(0, 0, -1), clock.Now())
		require.NoError(t, err)
		assert.Equal(t, 8.5, result.TotalHours)
	})

	t.Run("should wire the absence workflow with the default policy", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		ctx := context.Background()

		created, err := engine.Absences().Request(ctx, "user-1",
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
			"summer vacation")
		require.NoError(t, err)
		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusApproved)
		require.NoError(t, err)

		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusRejected)

		assert.ErrorIs(t, err, absence.ErrAlreadyFinalized)
	})

	t.Run("should honor the absence override option", func(t *testing.T) {
		engine, err := New(WithAbsenceStatusOverride(true))
		require.NoError(t, err)
		ctx := context.Background()

		created, err := engine.Absences().Request(ctx, "user-1",
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
			"summer vacation")
		require.NoError(t, err)
		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusApproved)
		require.NoError(t, err)

		updated, err := engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusRejected)

		require.NoError(t, err)
		assert.Equal(t, absence.StatusRejected, updated.Status)
	})

	t.Run("should honor the profit basis option", func(t *testing.T) {
		engine, err := New(WithProfitBasis(stats.ProfitBasisCash))
		require.NoError(t, err)
		ctx := context.Background()
		_, err = engine.Financials().CreateInvoice(ctx, financial.Invoice{Number: "INV-001", Amount: 100})
		require.NoError(t, err)
		_, err = engine.Financials().CreateExpense(ctx, financial.Expense{Amount: 40})
		require.NoError(t, err)
		_, err = engine.Financials().CreatePayment(ctx, financial.Payment{Amount: 90})
		require.NoError(t, err)

		result, err := engine.Stats().FinancialStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 50.0, result.Profit)
	})

	t.Run("should deliver change notifications to subscribers", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		ctx := context.Background()
		var seen []event_bus.EventType
		unsub := engine.Subscribe(project.EventChanged, func(e event_bus.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
		defer unsub()

		_, err = engine.Projects().Create(ctx, project.Project{Name: "Website"})
		require.NoError(t, err)

		require.Len(t, seen, 1)
		assert.Equal(t, project.EventChanged, seen[0])
	})

	t.Run("should load policy settings from a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "absence:\n  allowstatusoverride: true\nstats:\n  profitbasis: cash\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		engine, err := New(WithConfigFile(path))
		require.NoError(t, err)
		ctx := context.Background()

		created, err := engine.Absences().Request(ctx, "user-1",
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			"appointment")
		require.NoError(t, err)
		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusApproved)
		require.NoError(t, err)
		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusRejected)
		assert.NoError(t, err)

		_, err = engine.Financials().CreatePayment(ctx, financial.Payment{Amount: 25})
		require.NoError(t, err)
		result, err := engine.Stats().FinancialStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 25.0, result.Profit)
	})

	t.Run("should honor environment variables without a config file", func(t *testing.T) {
		t.Setenv("WORKFORCE_ABSENCE_ALLOWSTATUSOVERRIDE", "true")
		engine, err := New()
		require.NoError(t, err)
		ctx := context.Background()

		created, err := engine.Absences().Request(ctx, "user-1",
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			"appointment")
		require.NoError(t, err)
		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusApproved)
		require.NoError(t, err)

		_, err = engine.Absences().UpdateStatus(ctx, created.ID, absence.StatusRejected)

		assert.NoError(t, err)
	})

	t.Run("stores of separate engines are independent", func(t *testing.T) {
		first, err := New()
		require.NoError(t, err)
		second, err := New()
		require.NoError(t, err)
		ctx := context.Background()

		_, err = first.Attendance().ClockIn(ctx, "user-1")
		require.NoError(t, err)

		entry, err := second.Attendance().OpenEntry(ctx, "user-1")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}
