package engine

import (
	"fmt"

	"github.com/LutherIcami/workforce/internal/config"
	"github.com/LutherIcami/workforce/internal/utils"
	"github.com/LutherIcami/workforce/pkg/absence"
	"github.com/LutherIcami/workforce/pkg/attendance"
	"github.com/LutherIcami/workforce/pkg/event_bus"
	"github.com/LutherIcami/workforce/pkg/financial"
	"github.com/LutherIcami/workforce/pkg/project"
	"github.com/LutherIcami/workforce/pkg/stats"
	log "github.com/sirupsen/logrus"
)

// Engine is the composition root: every store, repository and service is
// built exactly once here and handed to consumers as an explicit handle.
// Nothing in this module holds global mutable state.
type Engine struct {
	cfg config.Application
	bus *event_bus.EventBus

	attendanceService *attendance.ServiceImpl
	absenceService    *absence.ServiceImpl
	projectService    *project.ServiceImpl
	financialService  *financial.ServiceImpl
	statsService      *stats.StatsServiceImpl
}

type options struct {
	configFile          string
	clock               utils.Clock
	allowStatusOverride *bool
	profitBasis         *stats.ProfitBasis
}

type Option func(*options)

// WithConfigFile loads engine configuration from the given YAML file,
// layered with WORKFORCE_* environment variables.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithClock replaces the system clock, for deterministic tests.
func WithClock(clock utils.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAbsenceStatusOverride toggles the administrative override on
// finalized absences, taking precedence over configuration.
func WithAbsenceStatusOverride(allowed bool) Option {
	return func(o *options) {
		o.allowStatusOverride = &allowed
	}
}

// WithProfitBasis selects how profit is derived, taking precedence over
// configuration.
func WithProfitBasis(basis stats.ProfitBasis) Option {
	return func(o *options) {
		o.profitBasis = &basis
	}
}

func New(opts ...Option) (*Engine, error) {
	o := options{clock: &utils.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	// Load runs the full layering even without a file, so WORKFORCE_*
	// environment variables apply to a file-less engine too.
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping current level", cfg.Log.Level)
	}

	allowOverride := cfg.Absence.AllowStatusOverride
	if o.allowStatusOverride != nil {
		allowOverride = *o.allowStatusOverride
	}
	profitBasis := stats.ParseProfitBasis(cfg.Stats.ProfitBasis)
	if o.profitBasis != nil {
		profitBasis = *o.profitBasis
	}

	bus := event_bus.NewEventBus()

	attendanceService := attendance.NewServiceWithClock(attendance.NewRepository(), bus, o.clock)
	absenceService := absence.NewService(absence.NewRepository(), bus, allowOverride)
	projectService := project.NewService(project.NewRepository(), bus)
	financialService := financial.NewService(
		financial.NewInvoiceRepository(),
		financial.NewExpenseRepository(),
		financial.NewPaymentRepository(),
		bus,
	)
	statsService := stats.NewStatsServiceImpl(
		projectService,
		financialService,
		financialService,
		financialService,
		attendanceService,
		profitBasis,
	)

	log.Infof("Engine initialized (absence override: %t, profit basis: %s)", allowOverride, profitBasis)

	return &Engine{
		cfg:               cfg,
		bus:               bus,
		attendanceService: attendanceService,
		absenceService:    absenceService,
		projectService:    projectService,
		financialService:  financialService,
		statsService:      statsService,
	}, nil
}

func (e *Engine) Attendance() attendance.Service {
	return e.attendanceService
}

func (e *Engine) Absences() absence.Service {
	return e.absenceService
}

func (e *Engine) Projects() project.Service {
	return e.projectService
}

func (e *Engine) Financials() financial.Service {
	return e.financialService
}

func (e *Engine) Stats() stats.StatsService {
	return e.statsService
}

// Subscribe registers a handler for engine change notifications and
// returns an unsubscribe function. Handlers run synchronously on the
// mutating goroutine and should return quickly.
func (e *Engine) Subscribe(eventType event_bus.EventType, h func(event_bus.Event) error) (unsubscribe func()) {
	return e.bus.Subscribe(eventType, h)
}
