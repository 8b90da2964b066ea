package services_test

import (
	"testing"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/ConversorDuo/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestConvert_KnownRate(t *testing.T) {
	rates := &stubRateReader{snapshot: &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.92},
	}}
	service := services.NewConversionService(rates)

	result := service.Convert(10, "EUR")

	assert.True(t, result.RateKnown)
	assert.Equal(t, "9.20", result.Converted)
	assert.Equal(t, 0.92, result.Rate)
}

func TestConvert_UnknownRateYieldsPlaceholder(t *testing.T) {
	rates := &stubRateReader{snapshot: &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.92},
	}}
	service := services.NewConversionService(rates)

	result := service.Convert(10, "XXX")

	assert.False(t, result.RateKnown)
	assert.Equal(t, "0.00", result.Converted)
}

func TestConvert_NoSnapshotYet(t *testing.T) {
	service := services.NewConversionService(&stubRateReader{loading: true})

	result := service.Convert(10, "EUR")

	assert.False(t, result.RateKnown)
	assert.Equal(t, "0.00", result.Converted)
	assert.True(t, result.Loading)
}

func TestQuickTable_FixedAmounts(t *testing.T) {
	rates := &stubRateReader{snapshot: &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.5},
	}}
	service := services.NewConversionService(rates)

	rows := service.QuickTable("EUR")

	assert.Len(t, rows, 5)
	assert.Equal(t, float64(1), rows[0].Amount)
	assert.Equal(t, "0.50", rows[0].Converted)
	assert.Equal(t, float64(100), rows[4].Amount)
	assert.Equal(t, "50.00", rows[4].Converted)
}

func TestConvertFavorite_CrossPair(t *testing.T) {
	// Snapshot base is USD; the favorite pair is EUR -> GBP, so the value is
	// amount * rate[GBP] / rate[EUR].
	rates := &stubRateReader{snapshot: &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.8, "GBP": 0.4},
	}}
	service := services.NewConversionService(rates)

	got := service.ConvertFavorite(domain.SavedConversion{Amount: 10, From: "EUR", To: "GBP"})

	assert.Equal(t, "5.00", got)
}

func TestConvertFavorite_UnknownFromFallsBackToBase(t *testing.T) {
	rates := &stubRateReader{snapshot: &domain.RateSnapshot{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.92},
	}}
	service := services.NewConversionService(rates)

	got := service.ConvertFavorite(domain.SavedConversion{Amount: 10, From: "XXX", To: "EUR"})

	assert.Equal(t, "9.20", got)
}
