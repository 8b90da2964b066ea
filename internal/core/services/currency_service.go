package services

import (
	"context"
	"fmt"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
)

// currencyService serves the static catalog. There is no repository behind
// it: the supported set is compiled in.
type currencyService struct{}

// NewCurrencyService creates the catalog service.
func NewCurrencyService() portssvc.CurrencySvcFacade {
	return &currencyService{}
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return domain.Catalog(), nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	for _, c := range domain.Catalog() {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
}
