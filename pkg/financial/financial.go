package financial

import (
	"slices"
	"time"

	"github.com/LutherIcami/workforce/pkg/event_bus"
)

const EventChanged event_bus.EventType = "financial.changed"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "PENDING"
	ExpenseStatusApproved ExpenseStatus = "APPROVED"
	ExpenseStatusRejected ExpenseStatus = "REJECTED"
	ExpenseStatusPaid     ExpenseStatus = "PAID"
)

type ExpenseCategory string

const (
	ExpenseCategoryTravel    ExpenseCategory = "TRAVEL"
	ExpenseCategoryMeals     ExpenseCategory = "MEALS"
	ExpenseCategorySupplies  ExpenseCategory = "SUPPLIES"
	ExpenseCategoryEquipment ExpenseCategory = "EQUIPMENT"
	ExpenseCategorySoftware  ExpenseCategory = "SOFTWARE"
	ExpenseCategoryServices  ExpenseCategory = "SERVICES"
	ExpenseCategoryOther     ExpenseCategory = "OTHER"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

type Invoice struct {
	ID         string
	Number     string
	CustomerID string
	ProjectID  string
	Amount     float64
	Status     InvoiceStatus
	DueDate    time.Time
	IssueDate  time.Time
	Items      []InvoiceItem
	Notes      string
}

func (i Invoice) RecordID() string {
	return i.ID
}

// Clone returns a copy sharing no mutable state with the receiver.
func (i Invoice) Clone() Invoice {
	clone := i
	clone.Items = slices.Clone(i.Items)
	return clone
}

type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

type Expense struct {
	ID          string
	ProjectID   string
	UserID      string
	Amount      float64
	Category    ExpenseCategory
	Description string
	Date        time.Time
	Status      ExpenseStatus
	ReceiptURL  string
}

func (e Expense) RecordID() string {
	return e.ID
}

// Clone returns a copy of the expense. All fields are value types.
func (e Expense) Clone() Expense {
	return e
}

type Payment struct {
	ID        string
	InvoiceID string
	Amount    float64
	Date      time.Time
	Method    PaymentMethod
	Status    PaymentStatus
	Reference string
	Notes     string
}

func (p Payment) RecordID() string {
	return p.ID
}

// Clone returns a copy of the payment. All fields are value types.
func (p Payment) Clone() Payment {
	return p
}
