package services

import (
	"context"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// RateReaderSvc defines read access to the current rate snapshot.
type RateReaderSvc interface {
	// Snapshot returns the last successfully fetched snapshot, or nil when
	// no fetch has succeeded yet.
	Snapshot() *domain.RateSnapshot

	// Loading reports whether a refresh is in flight. While true, consumers
	// must treat any conversion result as provisional.
	Loading() bool
}

// RateRefresherSvc defines the refresh operation for the rates slot.
type RateRefresherSvc interface {
	// Refresh fetches the full rate mapping for base and replaces the
	// snapshot wholesale on success. On failure the previous snapshot is
	// retained and an error notification is published.
	Refresh(ctx context.Context, base string) error
}

// RateSvcFacade combines all rate-related service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}
