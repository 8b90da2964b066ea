package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/eapache/go-resiliency/retrier"
)

// rateService owns the rates slot: the last good snapshot, the in-flight
// counter, and the generation token that guards against a slow stale
// response overwriting a newer one.
type rateService struct {
	provider portsprov.RateProvider
	notifier portssvc.NotifierSvc
	logger   *slog.Logger
	retry    *retrier.Retrier

	mu       sync.RWMutex
	snapshot *domain.RateSnapshot
	gen      uint64
	inFlight int
}

// NewRateService creates the rate fetch orchestrator. Upstream calls are
// retried twice with a constant backoff before the failure path runs.
func NewRateService(provider portsprov.RateProvider, notifier portssvc.NotifierSvc, logger *slog.Logger) portssvc.RateSvcFacade {
	return &rateService{
		provider: provider,
		notifier: notifier,
		logger:   logger,
		retry:    retrier.New(retrier.ConstantBackoff(2, 500*time.Millisecond), nil),
	}
}

// Refresh fetches the full mapping for base. On success the snapshot is
// replaced wholesale; on failure the previous snapshot stays untouched and
// an error notification is published. A response whose generation token is
// no longer the latest is discarded.
func (s *rateService) Refresh(ctx context.Context, base string) error {
	s.mu.Lock()
	s.gen++
	token := s.gen
	s.inFlight++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	var snap *domain.RateSnapshot
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var ferr error
		snap, ferr = s.provider.FetchLatest(ctx, base)
		return ferr
	})
	if err != nil {
		s.logger.Error("rate refresh failed, keeping previous snapshot",
			slog.String("base", base), slog.String("error", err.Error()))
		s.notifier.Publish(domain.Notification{
			Message:  "No se pudieron actualizar las tasas",
			Severity: domain.SeverityError,
		})
		return fmt.Errorf("%w: fetching rates for %s: %v", apperrors.ErrUpstream, base, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		s.logger.Warn("discarding stale rate response",
			slog.String("base", base), slog.Uint64("token", token), slog.Uint64("latest", s.gen))
		return nil
	}

	s.snapshot = snap
	s.logger.Info("rate snapshot replaced",
		slog.String("base", base), slog.Int("rates", len(snap.Rates)))
	return nil
}

func (s *rateService) Snapshot() *domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *rateService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}
