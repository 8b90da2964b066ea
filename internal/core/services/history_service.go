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

// historyService owns the history slot, with the same generation-token
// guard as the rates slot.
type historyService struct {
	provider portsprov.HistoryProvider
	notifier portssvc.NotifierSvc
	logger   *slog.Logger
	retry    *retrier.Retrier
	now      func() time.Time

	mu       sync.RWMutex
	series   []domain.HistoryPoint
	gen      uint64
	inFlight int
}

// NewHistoryService creates the history fetch orchestrator.
func NewHistoryService(provider portsprov.HistoryProvider, notifier portssvc.NotifierSvc, logger *slog.Logger) portssvc.HistorySvcFacade {
	return &historyService{
		provider: provider,
		notifier: notifier,
		logger:   logger,
		retry:    retrier.New(retrier.ConstantBackoff(2, 500*time.Millisecond), nil),
		now:      time.Now,
	}
}

// Refresh fetches the series for the pair over the named range. A
// same-currency pair has no meaningful trend, so it resolves to an empty
// series without touching the network.
func (s *historyService) Refresh(ctx context.Context, from, to string, timeRange domain.TimeRange) error {
	s.mu.Lock()
	s.gen++
	token := s.gen
	s.mu.Unlock()

	if from == to {
		s.applyIfCurrent(token, []domain.HistoryPoint{})
		return nil
	}

	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	end := s.now()
	start := timeRange.WindowStart(end)

	var series []domain.HistoryPoint
	err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
		var ferr error
		series, ferr = s.provider.FetchSeries(ctx, from, to, start, end)
		return ferr
	})
	if err != nil {
		s.logger.Error("history refresh failed, keeping previous series",
			slog.String("from", from), slog.String("to", to),
			slog.String("range", string(timeRange)), slog.String("error", err.Error()))
		s.notifier.Publish(domain.Notification{
			Message:  "No se pudo actualizar el historial",
			Severity: domain.SeverityError,
		})
		return fmt.Errorf("%w: fetching history for %s/%s: %v", apperrors.ErrUpstream, from, to, err)
	}

	if s.applyIfCurrent(token, series) {
		s.logger.Info("history series replaced",
			slog.String("from", from), slog.String("to", to), slog.Int("points", len(series)))
	} else {
		s.logger.Warn("discarding stale history response",
			slog.String("from", from), slog.String("to", to))
	}
	return nil
}

// applyIfCurrent installs the series only when token is still the latest
// issued for this slot.
func (s *historyService) applyIfCurrent(token uint64, series []domain.HistoryPoint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	s.series = series
	return true
}

func (s *historyService) Series() []domain.HistoryPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HistoryPoint, len(s.series))
	copy(out, s.series)
	return out
}

func (s *historyService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}
