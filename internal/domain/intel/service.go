package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

type Service interface {
	Report(ctx context.Context, q domain.QueryContext) (domain.Report, error)
	SearchJobs(ctx context.Context, q LegacyQuery) ([]domain.JobListing, error)
	SearchNews(ctx context.Context, q LegacyQuery) ([]domain.NewsListing, error)
	SearchWeb(ctx context.Context, q LegacyQuery) ([]json.RawMessage, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	gateway Gateway
	logger  *logging.Logger
	clock   func() time.Time
	newID   func() uuid.UUID
}

// WithGateway sets the search provider
func WithGateway(gw Gateway) Option {
	return func(c *config) {
		c.gateway = gw
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithIDGenerator sets the report ID source
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.gateway == nil {
		return nil, fmt.Errorf("intel.Service: gateway is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	return &service{
		gateway: cfg.gateway,
		logger:  cfg.logger.Named("intel"),
		clock:   cfg.clock,
		newID:   cfg.newID,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(gw Gateway, logger *logging.Logger) (Service, error) {
	return NewService(WithGateway(gw), WithLogger(logger))
}

type service struct {
	gateway Gateway
	logger  *logging.Logger
	clock   func() time.Time
	newID   func() uuid.UUID
}

// Report runs the hiring, signals, and news collectors concurrently and
// aggregates whatever they return. Collector failures never fail the report.
func (s *service) Report(ctx context.Context, q domain.QueryContext) (domain.Report, error) {
	q.Company = strings.TrimSpace(q.Company)
	q.Location = strings.TrimSpace(q.Location)
	if q.Company == "" {
		return domain.Report{}, ErrCompanyRequired
	}

	s.logger.Info("gathering intelligence", "company", q.Company, "location", q.Location, "provider", s.gateway.Name())

	var (
		hiring  domain.HiringSummary
		signals domain.SignalsSummary
		news    []domain.Signal
	)

	var g errgroup.Group
	g.Go(func() error {
		hiring = s.collectHiring(ctx, q)
		return nil
	})
	g.Go(func() error {
		signals = s.collectSignals(ctx, q)
		return nil
	})
	g.Go(func() error {
		news = s.collectNews(ctx, q)
		return nil
	})
	_ = g.Wait()

	report, err := s.aggregate(hiring, signals, news, q)
	if err != nil {
		s.logger.Error("aggregation failed", "company", q.Company, "err", err)
		return domain.Report{}, err
	}

	report.ID = s.newID()
	report.SearchTimestamp = s.clock().UTC()

	s.logger.Info("intelligence gathered",
		"company", q.Company,
		"report_id", report.ID.String(),
		"score", report.OverallScore,
		"priority", report.PriorityLevel,
	)

	return report, nil
}

func (s *service) aggregate(
	hiring domain.HiringSummary,
	signals domain.SignalsSummary,
	news []domain.Signal,
	q domain.QueryContext,
) (report domain.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &AggregationError{Company: q.Company, Location: q.Location, Err: fmt.Errorf("%v", r)}
		}
	}()

	report, err = Aggregate(hiring, signals, news, q.Company, q.Location)
	if err != nil {
		return domain.Report{}, &AggregationError{Company: q.Company, Location: q.Location, Err: err}
	}
	return report, nil
}
