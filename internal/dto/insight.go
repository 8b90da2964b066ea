package dto

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// InsightRequest defines the conversion an insight is asked for.
type InsightRequest struct {
	From   string  `json:"from" binding:"required,uppercase,len=3,catalog"`
	To     string  `json:"to" binding:"required,uppercase,len=3,catalog"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// InsightResponse defines the AI analysis of a conversion.
type InsightResponse struct {
	Analysis  string   `json:"analysis"`
	Tips      []string `json:"tips"`
	Sentiment string   `json:"sentiment"`
}

// TranslateInsightRequest defines an insight to re-render in another language.
type TranslateInsightRequest struct {
	Insight    InsightResponse `json:"insight" binding:"required"`
	TargetLang string          `json:"targetLang" binding:"required"`
}

// ToInsightResponse converts a domain.Insight to its DTO.
func ToInsightResponse(insight *domain.Insight) InsightResponse {
	return InsightResponse{
		Analysis:  insight.Analysis,
		Tips:      insight.Tips,
		Sentiment: string(insight.Sentiment),
	}
}

// ToDomainInsight converts an InsightResponse back to the domain type.
func (r InsightResponse) ToDomainInsight() domain.Insight {
	return domain.Insight{
		Analysis:  r.Analysis,
		Tips:      r.Tips,
		Sentiment: domain.Sentiment(r.Sentiment),
	}
}
