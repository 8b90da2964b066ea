package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// InsightSvcFacade wraps the optional AI collaborator. A nil insight means
// "nothing to show"; the caller never sees the underlying failure.
type InsightSvcFacade interface {
	GetInsight(ctx context.Context, from, to string, amount float64) *domain.Insight
	TranslateInsight(ctx context.Context, insight domain.Insight, targetLang string) *domain.Insight
}
