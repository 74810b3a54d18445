package financial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("financial record not found")

type Service interface {
	CreateInvoice(ctx context.Context, invoice Invoice) (Invoice, error)
	UpdateInvoice(ctx context.Context, invoice Invoice) error
	GetInvoice(ctx context.Context, id string) (Invoice, error)
	Invoices(ctx context.Context) ([]Invoice, error)
	InvoicesByStatus(ctx context.Context, status InvoiceStatus) ([]Invoice, error)
	InvoicesByIssueDateRange(ctx context.Context, from, to time.Time) ([]Invoice, error)

	CreateExpense(ctx context.Context, expense Expense) (Expense, error)
	UpdateExpense(ctx context.Context, expense Expense) error
	GetExpense(ctx context.Context, id string) (Expense, error)
	Expenses(ctx context.Context) ([]Expense, error)
	ExpensesByStatus(ctx context.Context, status ExpenseStatus) ([]Expense, error)
	ExpensesByCategory(ctx context.Context, category ExpenseCategory) ([]Expense, error)

	CreatePayment(ctx context.Context, payment Payment) (Payment, error)
	UpdatePayment(ctx context.Context, payment Payment) error
	GetPayment(ctx context.Context, id string) (Payment, error)
	Payments(ctx context.Context) ([]Payment, error)
	PaymentsByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error)
	PaymentsByInvoice(ctx context.Context, invoiceID string) ([]Payment, error)
}

type ServiceImpl struct {
	invoices InvoiceRepository
	expenses ExpenseRepository
	payments PaymentRepository
	bus      *event_bus.EventBus
}

func NewService(invoices InvoiceRepository, expenses ExpenseRepository, payments PaymentRepository, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{
		invoices: invoices,
		expenses: expenses,
		payments: payments,
		bus:      bus,
	}
}

func (s *ServiceImpl) CreateInvoice(ctx context.Context, invoice Invoice) (Invoice, error) {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	if err := s.invoices.Store(ctx, invoice); err != nil {
		return Invoice{}, fmt.Errorf("failed to store invoice: %w", err)
	}
	log.Debugf("Created invoice %s (%s)", invoice.ID, invoice.Number)
	s.publish(ctx, invoice)
	return invoice, nil
}

func (s *ServiceImpl) UpdateInvoice(ctx context.Context, invoice Invoice) error {
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	s.publish(ctx, invoice)
	return nil
}

func (s *ServiceImpl) GetInvoice(ctx context.Context, id string) (Invoice, error) {
	invoice, found, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return Invoice{}, err
	}
	if !found {
		return Invoice{}, ErrNotFound
	}
	return invoice, nil
}

func (s *ServiceImpl) Invoices(ctx context.Context) ([]Invoice, error) {
	return s.invoices.FindAll(ctx)
}

func (s *ServiceImpl) InvoicesByStatus(ctx context.Context, status InvoiceStatus) ([]Invoice, error) {
	return s.invoices.FindByStatus(ctx, status)
}

func (s *ServiceImpl) InvoicesByIssueDateRange(ctx context.Context, from, to time.Time) ([]Invoice, error) {
	return s.invoices.FindByIssueDateRange(ctx, from, to)
}

func (s *ServiceImpl) CreateExpense(ctx context.Context, expense Expense) (Expense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if err := s.expenses.Store(ctx, expense); err != nil {
		return Expense{}, fmt.Errorf("failed to store expense: %w", err)
	}
	log.Debugf("Created expense %s (%s)", expense.ID, expense.Category)
	s.publish(ctx, expense)
	return expense, nil
}

func (s *ServiceImpl) UpdateExpense(ctx context.Context, expense Expense) error {
	if err := s.expenses.Update(ctx, expense); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	s.publish(ctx, expense)
	return nil
}

func (s *ServiceImpl) GetExpense(ctx context.Context, id string) (Expense, error) {
	expense, found, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	if !found {
		return Expense{}, ErrNotFound
	}
	return expense, nil
}

func (s *ServiceImpl) Expenses(ctx context.Context) ([]Expense, error) {
	return s.expenses.FindAll(ctx)
}

func (s *ServiceImpl) ExpensesByStatus(ctx context.Context, status ExpenseStatus) ([]Expense, error) {
	return s.expenses.FindByStatus(ctx, status)
}

func (s *ServiceImpl) ExpensesByCategory(ctx context.Context, category ExpenseCategory) ([]Expense, error) {
	return s.expenses.FindByCategory(ctx, category)
}

func (s *ServiceImpl) CreatePayment(ctx context.Context, payment Payment) (Payment, error) {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if err := s.payments.Store(ctx, payment); err != nil {
		return Payment{}, fmt.Errorf("failed to store payment: %w", err)
	}
	log.Debugf("Created payment %s for invoice %s", payment.ID, payment.InvoiceID)
	s.publish(ctx, payment)
	return payment, nil
}

func (s *ServiceImpl) UpdatePayment(ctx context.Context, payment Payment) error {
	if err := s.payments.Update(ctx, payment); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	s.publish(ctx, payment)
	return nil
}

func (s *ServiceImpl) GetPayment(ctx context.Context, id string) (Payment, error) {
	payment, found, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return Payment{}, err
	}
	if !found {
		return Payment{}, ErrNotFound
	}
	return payment, nil
}

func (s *ServiceImpl) Payments(ctx context.Context) ([]Payment, error) {
	return s.payments.FindAll(ctx)
}

func (s *ServiceImpl) PaymentsByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error) {
	return s.payments.FindByStatus(ctx, status)
}

func (s *ServiceImpl) PaymentsByInvoice(ctx context.Context, invoiceID string) ([]Payment, error) {
	return s.payments.FindByInvoice(ctx, invoiceID)
}

func (s *ServiceImpl) publish(ctx context.Context, record any) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, EventChanged, record)); err != nil {
		log.Warnf("Failed to notify subscribers of %s: %v", EventChanged, err)
	}
}
