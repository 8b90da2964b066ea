package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// SessionSvcFacade owns the session-scoped application state and triggers
// the dependent refreshes when the pair or range changes.
type SessionSvcFacade interface {
	// State returns the current application state.
	State() domain.AppState

	// SetAmount updates the amount. No refresh is triggered.
	SetAmount(amount float64) domain.AppState

	// SetPair updates the conversion pair and refreshes rates and history.
	SetPair(ctx context.Context, from, to string) (domain.AppState, error)

	// Swap exchanges from and to atomically and refreshes rates and history.
	Swap(ctx context.Context) domain.AppState

	// SetRange updates the history range and refreshes the series.
	SetRange(ctx context.Context, timeRange domain.TimeRange) domain.AppState

	// SetTab switches the active view.
	SetTab(tab domain.Tab) domain.AppState

	// SetTheme switches the color theme.
	SetTheme(theme domain.Theme) domain.AppState

	// SelectFavorite restores a stored conversion into the session state
	// and switches the active view to the converter.
	SelectFavorite(ctx context.Context, id string) (domain.AppState, error)
}
