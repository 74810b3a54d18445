package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/LutherIcami/workforce/pkg/attendance"
	"github.com/LutherIcami/workforce/pkg/financial"
	"github.com/LutherIcami/workforce/pkg/project"
	log "github.com/sirupsen/logrus"
)

// The aggregator reads through narrow interfaces so it can never mutate the
// stores it derives from.

type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

type InvoiceLister interface {
	Invoices(ctx context.Context) ([]financial.Invoice, error)
}

type ExpenseLister interface {
	Expenses(ctx context.Context) ([]financial.Expense, error)
}

type PaymentLister interface {
	Payments(ctx context.Context) ([]financial.Payment, error)
}

type EntryLister interface {
	Entries(ctx context.Context, from, to time.Time) ([]attendance.TimeEntry, error)
}

type StatsService interface {
	ProjectStatistics(ctx context.Context) (ProjectStatistics, error)
	FinancialStatistics(ctx context.Context) (FinancialStatistics, error)
	AttendanceStatistics(ctx context.Context, from, to time.Time) (AttendanceStatistics, error)
}

// StatsServiceImpl recomputes every summary from a fresh snapshot on each
// call. Record volumes are small; always-fresh beats caching here.
type StatsServiceImpl struct {
	projects    ProjectLister
	invoices    InvoiceLister
	expenses    ExpenseLister
	payments    PaymentLister
	entries     EntryLister
	profitBasis ProfitBasis
}

func NewStatsServiceImpl(
	projects ProjectLister,
	invoices InvoiceLister,
	expenses ExpenseLister,
	payments PaymentLister,
	entries EntryLister,
	profitBasis ProfitBasis,
) *StatsServiceImpl {
	return &StatsServiceImpl{
		projects:    projects,
		invoices:    invoices,
		expenses:    expenses,
		payments:    payments,
		entries:     entries,
		profitBasis: profitBasis,
	}
}

func (s *StatsServiceImpl) ProjectStatistics(ctx context.Context) (ProjectStatistics, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return ProjectStatistics{}, fmt.Errorf("failed to list projects: %w", err)
	}

	result := ProjectStatistics{TotalProjects: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case project.StatusInProgress:
			result.ActiveProjects++
		case project.StatusCompleted:
			result.CompletedProjects++
		}
		result.TotalBudget += p.Budget
		result.TotalSpent += p.SpentAmount
	}
	log.Tracef("Project statistics: %+v", result)
	return result, nil
}

func (s *StatsServiceImpl) FinancialStatistics(ctx context.Context) (FinancialStatistics, error) {
	invoices, err := s.invoices.Invoices(ctx)
	if err != nil {
		return FinancialStatistics{}, fmt.Errorf("failed to list invoices: %w", err)
	}
	expenses, err := s.expenses.Expenses(ctx)
	if err != nil {
		return FinancialStatistics{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	payments, err := s.payments.Payments(ctx)
	if err != nil {
		return FinancialStatistics{}, fmt.Errorf("failed to list payments: %w", err)
	}

	result := FinancialStatistics{}
	for _, invoice := range invoices {
		result.TotalRevenue += invoice.Amount
		switch invoice.Status {
		case financial.InvoiceStatusSent:
			result.PendingInvoices++
		case financial.InvoiceStatusOverdue:
			result.OverdueInvoices++
		}
	}
	for _, expense := range expenses {
		result.TotalExpenses += expense.Amount
	}
	for _, payment := range payments {
		result.TotalPayments += payment.Amount
	}

	switch s.profitBasis {
	case ProfitBasisCash:
		result.Profit = result.TotalPayments - result.TotalExpenses
	default:
		result.Profit = result.TotalRevenue - result.TotalExpenses
	}
	log.Tracef("Financial statistics (%s basis): %+v", s.profitBasis, result)
	return result, nil
}

func (s *StatsServiceImpl) AttendanceStatistics(ctx context.Context, from, to time.Time) (AttendanceStatistics, error) {
	entries, err := s.entries.Entries(ctx, from, to)
	if err != nil {
		return AttendanceStatistics{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	result := AttendanceStatistics{
		StartDate:   from,
		EndDate:     to,
		HoursByUser: map[string]float64{},
	}
	for _, entry := range entries {
		if entry.IsOpen() {
			result.OpenEntries++
			continue
		}
		result.CompletedEntries++
		result.TotalHours += *entry.HoursWorked
		result.HoursByUser[entry.UserID] += *entry.HoursWorked
	}
	log.Tracef("Attendance statistics %s - %s: %+v", from, to, result)
	return result, nil
}
