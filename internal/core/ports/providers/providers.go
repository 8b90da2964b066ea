package providers

import (
	"context"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// RateProvider fetches the full current-rate mapping for a base currency
// from the rates API.
type RateProvider interface {
	FetchLatest(ctx context.Context, base string) (*domain.RateSnapshot, error)
}

// HistoryProvider fetches a (date, rate) series for a pair over a date
// window from the historical-rates API. The returned series is ordered by
// ascending date.
type HistoryProvider interface {
	FetchSeries(ctx context.Context, from, to string, start, end time.Time) ([]domain.HistoryPoint, error)
}

// InsightProvider is the optional AI collaborator. Both operations are
// best-effort; callers must degrade gracefully when they fail.
type InsightProvider interface {
	// GenerateInsight explains the market context for a conversion.
	GenerateInsight(ctx context.Context, from, to string, amount float64) (*domain.Insight, error)

	// TranslateInsight renders an insight into the target language, keeping
	// the same structure.
	TranslateInsight(ctx context.Context, insight domain.Insight, targetLang string) (*domain.Insight, error)
}
