package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// HistoryReaderSvc defines read access to the current history series.
type HistoryReaderSvc interface {
	// Series returns the last successfully fetched series (ascending by
	// date). It may be empty or stale after a failed refresh.
	Series() []domain.HistoryPoint

	// Loading reports whether a refresh is in flight.
	Loading() bool
}

// HistoryRefresherSvc defines the refresh operation for the history slot.
type HistoryRefresherSvc interface {
	// Refresh fetches the series for the pair over the named range. When
	// from == to it short-circuits to an empty series without a network
	// call. On failure the previous series is retained and an error
	// notification is published.
	Refresh(ctx context.Context, from, to string, timeRange domain.TimeRange) error
}

// HistorySvcFacade combines all history-related service interfaces.
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryRefresherSvc
}
