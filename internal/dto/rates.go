package dto

import (
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// RefreshRatesRequest selects the base currency to refresh for.
type RefreshRatesRequest struct {
	Base string `json:"base" binding:"required,uppercase,len=3,catalog"`
}

// RateSnapshotResponse defines the data returned for the current snapshot.
// LastUpdateDate and LastUpdateTime carry the provider timestamp already
// formatted for display.
type RateSnapshotResponse struct {
	Base           string             `json:"base"`
	Rates          map[string]float64 `json:"rates"`
	LastUpdateDate string             `json:"lastUpdateDate"`
	LastUpdateTime string             `json:"lastUpdateTime"`
	FetchedAt      time.Time          `json:"fetchedAt"`
	Loading        bool               `json:"loading"`
}

// ToRateSnapshotResponse converts a domain.RateSnapshot to its DTO. A nil
// snapshot (nothing fetched yet) yields an empty response with Loading set.
func ToRateSnapshotResponse(snap *domain.RateSnapshot, loading bool) RateSnapshotResponse {
	res := RateSnapshotResponse{
		Rates:   map[string]float64{},
		Loading: loading,
	}
	if snap == nil {
		return res
	}

	date, clock := snap.LastUpdateDisplay()
	res.Base = snap.Base
	res.Rates = snap.Rates
	res.LastUpdateDate = date
	res.LastUpdateTime = clock
	res.FetchedAt = snap.FetchedAt
	return res
}
