package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
)

// sessionService owns the live application state. State transitions are the
// pure functions on domain.AppState; this service serializes them and kicks
// off the rate/history refreshes a pair or range change implies.
type sessionService struct {
	rates     portssvc.RateRefresherSvc
	history   portssvc.HistoryRefresherSvc
	favorites portssvc.FavoriteReaderSvc
	logger    *slog.Logger

	mu    sync.RWMutex
	state domain.AppState
}

// NewSessionService creates the session state holder, starting from the
// default view (USD to EUR, amount 1, one-month range).
func NewSessionService(rates portssvc.RateRefresherSvc, history portssvc.HistoryRefresherSvc, favorites portssvc.FavoriteReaderSvc, logger *slog.Logger) portssvc.SessionSvcFacade {
	return &sessionService{
		rates:     rates,
		history:   history,
		favorites: favorites,
		logger:    logger,
		state:     domain.DefaultAppState(),
	}
}

func (s *sessionService) State() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) SetAmount(amount float64) domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithAmount(amount)
	return s.state
}

// SetPair updates the conversion pair. Both currencies must be in the
// catalog; a valid change refreshes the rate snapshot for the new base and
// the history series for the new pair.
func (s *sessionService) SetPair(ctx context.Context, from, to string) (domain.AppState, error) {
	if !domain.KnownCurrency(from) {
		return s.State(), fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, from)
	}
	if !domain.KnownCurrency(to) {
		return s.State(), fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, to)
	}

	s.mu.Lock()
	s.state = s.state.WithPair(from, to)
	next := s.state
	s.mu.Unlock()

	s.refreshFor(ctx, next)
	return next, nil
}

// Swap exchanges the two sides of the pair in one transition, so no
// intermediate state with both sides equal is ever observable.
func (s *sessionService) Swap(ctx context.Context) domain.AppState {
	s.mu.Lock()
	s.state = s.state.Swapped()
	next := s.state
	s.mu.Unlock()

	s.refreshFor(ctx, next)
	return next
}

func (s *sessionService) SetRange(ctx context.Context, timeRange domain.TimeRange) domain.AppState {
	s.mu.Lock()
	s.state = s.state.WithRange(timeRange)
	next := s.state
	s.mu.Unlock()

	if err := s.history.Refresh(ctx, next.From, next.To, next.Range); err != nil {
		s.logger.Warn("history refresh after range change failed", slog.String("error", err.Error()))
	}
	return next
}

func (s *sessionService) SetTab(tab domain.Tab) domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithTab(tab)
	return s.state
}

func (s *sessionService) SetTheme(theme domain.Theme) domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithTheme(theme)
	return s.state
}

// SelectFavorite restores a stored conversion into the session and jumps
// back to the converter view. The stored record itself is left untouched.
func (s *sessionService) SelectFavorite(ctx context.Context, id string) (domain.AppState, error) {
	fav, err := s.favorites.GetFavorite(ctx, id)
	if err != nil {
		return s.State(), err
	}

	s.mu.Lock()
	s.state = s.state.WithAmount(fav.Amount).WithPair(fav.From, fav.To).WithTab(domain.TabConverter)
	next := s.state
	s.mu.Unlock()

	s.logger.Info("favorite restored into session", slog.String("favorite_id", id))
	s.refreshFor(ctx, next)
	return next, nil
}

// refreshFor pulls fresh rates and history for the given state. Failures
// are already surfaced through notifications by the fetch services, so they
// only get logged here.
func (s *sessionService) refreshFor(ctx context.Context, state domain.AppState) {
	if err := s.rates.Refresh(ctx, state.From); err != nil {
		s.logger.Warn("rate refresh after pair change failed", slog.String("error", err.Error()))
	}
	if err := s.history.Refresh(ctx, state.From, state.To, state.Range); err != nil {
		s.logger.Warn("history refresh after pair change failed", slog.String("error", err.Error()))
	}
}
