package services

import (
	"context"
	"log/slog"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portsprov "github.com/ConversorDuo/currency_converter_app/internal/core/ports/providers"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
)

// insightService wraps the AI provider so its failures never propagate past
// this layer. Every other feature works identically whether the provider is
// configured, misbehaving, or absent.
type insightService struct {
	provider portsprov.InsightProvider
	logger   *slog.Logger
}

// NewInsightService creates the insight facade. provider may be nil when no
// API key is configured.
func NewInsightService(provider portsprov.InsightProvider, logger *slog.Logger) portssvc.InsightSvcFacade {
	return &insightService{provider: provider, logger: logger}
}

func (s *insightService) GetInsight(ctx context.Context, from, to string, amount float64) *domain.Insight {
	if s.provider == nil {
		return nil
	}
	insight, err := s.provider.GenerateInsight(ctx, from, to, amount)
	if err != nil {
		s.logger.Warn("insight generation failed",
			slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
		return nil
	}
	return insight
}

func (s *insightService) TranslateInsight(ctx context.Context, insight domain.Insight, targetLang string) *domain.Insight {
	if s.provider == nil {
		return nil
	}
	translated, err := s.provider.TranslateInsight(ctx, insight, targetLang)
	if err != nil {
		s.logger.Warn("insight translation failed",
			slog.String("target_lang", targetLang), slog.String("error", err.Error()))
		return nil
	}
	return translated
}
