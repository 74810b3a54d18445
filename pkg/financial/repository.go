package financial

import (
	"context"
	"time"

	"github.com/LutherIcami/workforce/internal/store"
)

type InvoiceRepository interface {
	Store(ctx context.Context, invoice Invoice) error
	Update(ctx context.Context, invoice Invoice) error
	FindByID(ctx context.Context, id string) (Invoice, bool, error)
	FindAll(ctx context.Context) ([]Invoice, error)
	FindByStatus(ctx context.Context, status InvoiceStatus) ([]Invoice, error)
	FindByIssueDateRange(ctx context.Context, from, to time.Time) ([]Invoice, error)
}

type ExpenseRepository interface {
	Store(ctx context.Context, expense Expense) error
	Update(ctx context.Context, expense Expense) error
	FindByID(ctx context.Context, id string) (Expense, bool, error)
	FindAll(ctx context.Context) ([]Expense, error)
	FindByStatus(ctx context.Context, status ExpenseStatus) ([]Expense, error)
	FindByCategory(ctx context.Context, category ExpenseCategory) ([]Expense, error)
}

type PaymentRepository interface {
	Store(ctx context.Context, payment Payment) error
	Update(ctx context.Context, payment Payment) error
	FindByID(ctx context.Context, id string) (Payment, bool, error)
	FindAll(ctx context.Context) ([]Payment, error)
	FindByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error)
	FindByInvoice(ctx context.Context, invoiceID string) ([]Payment, error)
}

type invoiceRepositoryImpl struct {
	invoices *store.Store[Invoice]
}

func NewInvoiceRepository() InvoiceRepository {
	return &invoiceRepositoryImpl{invoices: store.New[Invoice]()}
}

func (r *invoiceRepositoryImpl) Store(ctx context.Context, invoice Invoice) error {
	return r.invoices.Create(invoice)
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, invoice Invoice) error {
	r.invoices.Update(invoice)
	return nil
}

func (r *invoiceRepositoryImpl) FindByID(ctx context.Context, id string) (Invoice, bool, error) {
	invoice, ok := r.invoices.FindByID(id)
	return invoice, ok, nil
}

func (r *invoiceRepositoryImpl) FindAll(ctx context.Context) ([]Invoice, error) {
	return r.invoices.FindAll(), nil
}

func (r *invoiceRepositoryImpl) FindByStatus(ctx context.Context, status InvoiceStatus) ([]Invoice, error) {
	return r.invoices.Filter(func(i Invoice) bool {
		return i.Status == status
	}), nil
}

func (r *invoiceRepositoryImpl) FindByIssueDateRange(ctx context.Context, from, to time.Time) ([]Invoice, error) {
	return r.invoices.Filter(func(i Invoice) bool {
		return !i.IssueDate.Before(from) && !i.IssueDate.After(to)
	}), nil
}

type expenseRepositoryImpl struct {
	expenses *store.Store[Expense]
}

func NewExpenseRepository() ExpenseRepository {
	return &expenseRepositoryImpl{expenses: store.New[Expense]()}
}

func (r *expenseRepositoryImpl) Store(ctx context.Context, expense Expense) error {
	return r.expenses.Create(expense)
}

func (r *expenseRepositoryImpl) Update(ctx context.Context, expense Expense) error {
	r.expenses.Update(expense)
	return nil
}

func (r *expenseRepositoryImpl) FindByID(ctx context.Context, id string) (Expense, bool, error) {
	expense, ok := r.expenses.FindByID(id)
	return expense, ok, nil
}

func (r *expenseRepositoryImpl) FindAll(ctx context.Context) ([]Expense, error) {
	return r.expenses.FindAll(), nil
}

func (r *expenseRepositoryImpl) FindByStatus(ctx context.Context, status ExpenseStatus) ([]Expense, error) {
	return r.expenses.Filter(func(e Expense) bool {
		return e.Status == status
	}), nil
}

func (r *expenseRepositoryImpl) FindByCategory(ctx context.Context, category ExpenseCategory) ([]Expense, error) {
	return r.expenses.Filter(func(e Expense) bool {
		return e.Category == category
	}), nil
}

type paymentRepositoryImpl struct {
	payments *store.Store[Payment]
}

func NewPaymentRepository() PaymentRepository {
	return &paymentRepositoryImpl{payments: store.New[Payment]()}
}

func (r *paymentRepositoryImpl) Store(ctx context.Context, payment Payment) error {
	return r.payments.Create(payment)
}

func (r *paymentRepositoryImpl) Update(ctx context.Context, payment Payment) error {
	r.payments.Update(payment)
	return nil
}

func (r *paymentRepositoryImpl) FindByID(ctx context.Context, id string) (Payment, bool, error) {
	payment, ok := r.payments.FindByID(id)
	return payment, ok, nil
}

func (r *paymentRepositoryImpl) FindAll(ctx context.Context) ([]Payment, error) {
	return r.payments.FindAll(), nil
}

func (r *paymentRepositoryImpl) FindByStatus(ctx context.Context, status PaymentStatus) ([]Payment, error) {
	return r.payments.Filter(func(p Payment) bool {
		return p.Status == status
	}), nil
}

func (r *paymentRepositoryImpl) FindByInvoice(ctx context.Context, invoiceID string) ([]Payment, error) {
	return r.payments.Filter(func(p Payment) bool {
		return p.InvoiceID == invoiceID
	}), nil
}
