package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// favoriteService keeps the favorites list in memory and writes the whole
// list through the repository on every mutation. The list operations
// themselves are the pure functions in the domain package; this service
// adds identity, persistence, and notifications.
type favoriteService struct {
	repo     portsrepo.FavoriteRepositoryFacade
	notifier portssvc.NotifierSvc
	logger   *slog.Logger

	mu        sync.RWMutex
	favorites []domain.SavedConversion
}

// NewFavoriteService creates the favorites store, rehydrating the list from
// the repository once. Corrupt or missing storage contents default to an
// empty list so startup never fails on bad persisted state.
func NewFavoriteService(ctx context.Context, repo portsrepo.FavoriteRepositoryFacade, notifier portssvc.NotifierSvc, logger *slog.Logger) portssvc.FavoriteSvcFacade {
	favorites, err := repo.LoadAll(ctx)
	if err != nil {
		logger.Warn("failed to load favorites, starting empty", slog.String("error", err.Error()))
		favorites = []domain.SavedConversion{}
	}

	return &favoriteService{
		repo:      repo,
		notifier:  notifier,
		logger:    logger,
		favorites: favorites,
	}
}

func (s *favoriteService) ListFavorites(ctx context.Context) []domain.SavedConversion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SavedConversion, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *favoriteService) GetFavorite(ctx context.Context, id string) (*domain.SavedConversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.favorites {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("%w: favorite %s", apperrors.ErrNotFound, id)
}

// SaveFavorite prepends a new record built from the current amount and
// pair. A duplicate (amount, from, to) is a no-op that surfaces a warning
// notification, not an error condition worth aborting on.
func (s *favoriteService) SaveFavorite(ctx context.Context, amount float64, from, to string) (*domain.SavedConversion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := domain.FindEquivalent(s.favorites, amount, from, to); existing != nil {
		s.notifier.Publish(domain.Notification{
			Message:  "¡Ya está en favoritos!",
			Severity: domain.SeverityWarning,
		})
		return nil, fmt.Errorf("%w: favorite %v %s->%s", apperrors.ErrDuplicate, amount, from, to)
	}

	fav := domain.SavedConversion{
		ID:       uuid.NewString(),
		Amount:   amount,
		From:     from,
		To:       to,
		FromFlag: domain.FlagFor(from),
		ToFlag:   domain.FlagFor(to),
	}

	updated := domain.PrependFavorite(s.favorites, fav)
	if err := s.repo.ReplaceAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to persist favorites: %w", err)
	}
	s.favorites = updated

	s.notifier.Publish(domain.Notification{
		Message:  "¡Guardado con éxito!",
		Severity: domain.SeveritySuccess,
	})
	s.logger.Info("favorite saved", slog.String("favorite_id", fav.ID),
		slog.String("from", from), slog.String("to", to))
	return &fav, nil
}

// RemoveFavorite deletes exactly the record with the given id. It touches
// nothing else — in particular it never changes the active view.
func (s *favoriteService) RemoveFavorite(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, removed := domain.RemoveFavoriteByID(s.favorites, id)
	if !removed {
		return fmt.Errorf("%w: favorite %s", apperrors.ErrNotFound, id)
	}

	if err := s.repo.ReplaceAll(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	s.favorites = updated

	s.logger.Info("favorite removed", slog.String("favorite_id", id))
	return nil
}
