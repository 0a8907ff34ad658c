package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/careconnect-api/internal/model"
	"github.com/jwalitptl/careconnect-api/internal/repository"
	"github.com/jwalitptl/careconnect-api/pkg/circuitbreaker"
	apperrors "github.com/jwalitptl/careconnect-api/pkg/errors"
	"github.com/jwalitptl/careconnect-api/pkg/metrics"
)

// Report names, used as cache keys and metric labels
const (
	UpcomingAppointments = "upcoming_appointments"
	NoShowRate           = "no_show_rate"
	AppointmentsByClinic = "appointments_by_clinic"
)

type ReportServicer interface {
	UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error)
	NoShowRates(ctx context.Context) ([]model.ProviderNoShowRate, error)
	AppointmentsByClinic(ctx context.Context) ([]model.ClinicAppointmentSummary, error)
}

type Config struct {
	// CacheTTL of zero disables caching
	CacheTTL     time.Duration
	QueryTimeout time.Duration
	// BreakerFailures consecutive query failures stop queries for
	// BreakerTimeout. Zero disables the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type Service struct {
	repo    repository.ReportRepository
	metrics *metrics.Metrics
	cache   *cache.Cache
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

func NewService(repo repository.ReportRepository, m *metrics.Metrics, cfg Config) *Service {
	s := &Service{
		repo:    repo,
		metrics: m,
		timeout: cfg.QueryTimeout,
	}
	if cfg.CacheTTL > 0 {
		s.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	if cfg.BreakerFailures > 0 {
		s.breaker = circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "reports",
			MaxFailures: cfg.BreakerFailures,
			Timeout:     cfg.BreakerTimeout,
		})
	}
	return s
}

func (s *Service) UpcomingAppointments(ctx context.Context) ([]model.UpcomingAppointment, error) {
	return run(ctx, s, UpcomingAppointments, s.repo.UpcomingAppointments)
}

func (s *Service) NoShowRates(ctx context.Context) ([]model.ProviderNoShowRate, error) {
	return run(ctx, s, NoShowRate, s.repo.NoShowRates)
}

func (s *Service) AppointmentsByClinic(ctx context.Context) ([]model.ClinicAppointmentSummary, error) {
	return run(ctx, s, AppointmentsByClinic, s.repo.AppointmentsByClinic)
}

func run[T any](ctx context.Context, s *Service, name string, query func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(name); ok {
			s.metrics.ReportCacheHits.WithLabelValues(name).Inc()
			return cached.([]T), nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	var rows []T
	err := s.execute(func() error {
		var qerr error
		rows, qerr = query(ctx)
		return qerr
	})
	s.metrics.ReportLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ReportErrors.WithLabelValues(name).Inc()
		log.Error().Err(err).Str("report", name).Msg("Report query failed")
		if errors.Is(err, circuitbreaker.ErrOpen) {
			return nil, apperrors.Unavailable("database unavailable", err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Timeout(fmt.Sprintf("%s report timed out", name), err)
		}
		return nil, apperrors.Internal(fmt.Errorf("%s report: %w", name, err))
	}

	s.metrics.ReportRows.WithLabelValues(name).Set(float64(len(rows)))
	if s.cache != nil {
		s.cache.SetDefault(name, rows)
	}
	return rows, nil
}

func (s *Service) execute(fn func() error) error {
	if s.breaker == nil {
		return fn()
	}
	return s.breaker.Execute(fn)
}
