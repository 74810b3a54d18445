package stats

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// ProfitBasis names how profit is derived from the financial records.
type ProfitBasis string

const (
	// ProfitBasisInvoiced derives profit from invoiced revenue minus
	// expenses, regardless of what has actually been collected.
	ProfitBasisInvoiced ProfitBasis = "invoiced"
	// ProfitBasisCash derives profit from collected payments minus
	// expenses.
	ProfitBasisCash ProfitBasis = "cash"
)

// ParseProfitBasis maps a configuration value to a ProfitBasis, falling
// back to the invoiced basis for unknown values.
func ParseProfitBasis(value string) ProfitBasis {
	switch ProfitBasis(value) {
	case ProfitBasisCash:
		return ProfitBasisCash
	case ProfitBasisInvoiced, "":
		return ProfitBasisInvoiced
	default:
		log.Warnf("Unknown profit basis %q, falling back to %q", value, ProfitBasisInvoiced)
		return ProfitBasisInvoiced
	}
}

type ProjectStatistics struct {
	TotalProjects     int
	ActiveProjects    int
	CompletedProjects int
	TotalBudget       float64
	TotalSpent        float64
}

type FinancialStatistics struct {
	TotalRevenue    float64
	TotalExpenses   float64
	TotalPayments   float64
	PendingInvoices int
	OverdueInvoices int
	Profit          float64
}

type AttendanceStatistics struct {
	StartDate        time.Time
	EndDate          time.Time
	TotalHours       float64
	CompletedEntries int
	OpenEntries      int
	HoursByUser      map[string]float64
}
