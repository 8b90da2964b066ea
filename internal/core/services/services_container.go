package services

import (
	"context"
	"log/slog"

	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/platform/config"
)

// Providers bundles the outbound adapters the services are wired against.
type Providers struct {
	Rates   portsprov.RateProvider
	History portsprov.HistoryProvider
	Insight portsprov.InsightProvider
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, providers Providers, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notifier first since the fetch and favorite services publish to it
	container.Notifier = NewNotificationService(cfg.NotificationTTL)

	container.Currency = NewCurrencyService()
	container.Rates = NewRateService(providers.Rates, container.Notifier, logger)
	container.History = NewHistoryService(providers.History, container.Notifier, logger)
	container.Conversion = NewConversionService(container.Rates)
	container.Favorites = NewFavoriteService(ctx, repos.FavoriteRepo, container.Notifier, logger)
	container.Session = NewSessionService(container.Rates, container.History, container.Favorites, logger)
	container.Insight = NewInsightService(providers.Insight, logger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*currencyService)(nil)
	_ portssvc.RateSvcFacade       = (*rateService)(nil)
	_ portssvc.HistorySvcFacade    = (*historyService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
	_ portssvc.FavoriteSvcFacade   = (*favoriteService)(nil)
	_ portssvc.SessionSvcFacade    = (*sessionService)(nil)
	_ portssvc.InsightSvcFacade    = (*insightService)(nil)
	_ portssvc.NotifierSvc         = (*notificationService)(nil)
)
