package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// CurrencySvcFacade exposes the static currency catalog.
type CurrencySvcFacade interface {
	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}
