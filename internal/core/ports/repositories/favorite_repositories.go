package repositories

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// FavoriteReader defines read operations for persisted favorites.
type FavoriteReader interface {
	// LoadAll retrieves the full favorites list, most-recently-added first.
	// Missing or corrupt storage yields an empty list, never an error that
	// would abort startup.
	LoadAll(ctx context.Context) ([]domain.SavedConversion, error)
}

// FavoriteWriter defines write operations for persisted favorites.
type FavoriteWriter interface {
	// ReplaceAll persists the full favorites list, overwriting whatever was
	// stored before. Called on every mutation.
	ReplaceAll(ctx context.Context, favorites []domain.SavedConversion) error
}

// FavoriteRepositoryFacade combines all favorite repository interfaces.
type FavoriteRepositoryFacade interface {
	FavoriteReader
	FavoriteWriter
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	FavoriteRepo FavoriteRepositoryFacade
}
