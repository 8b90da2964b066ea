package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// FavoriteReaderSvc defines read operations for favorites.
type FavoriteReaderSvc interface {
	// ListFavorites returns the favorites list, most-recently-added first.
	ListFavorites(ctx context.Context) []domain.SavedConversion

	// GetFavorite retrieves one favorite by id.
	GetFavorite(ctx context.Context, id string) (*domain.SavedConversion, error)
}

// FavoriteWriterSvc defines write operations for favorites.
type FavoriteWriterSvc interface {
	// SaveFavorite saves a new favorite built from amount and pair. A
	// favorite with identical (amount, from, to) already present is a
	// no-op: it returns apperrors.ErrDuplicate and publishes a warning
	// notification instead of an error.
	SaveFavorite(ctx context.Context, amount float64, from, to string) (*domain.SavedConversion, error)

	// RemoveFavorite deletes exactly the record with the given id.
	RemoveFavorite(ctx context.Context, id string) error
}

// FavoriteSvcFacade combines all favorite-related service interfaces.
type FavoriteSvcFacade interface {
	FavoriteReaderSvc
	FavoriteWriterSvc
}
