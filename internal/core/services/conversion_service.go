package services

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// quickAmounts is the fixed set of round amounts in the quick-reference table.
var quickAmounts = []float64{1, 5, 10, 50, 100}

// conversionService derives display figures from the current rate snapshot.
// It is a pure function of its inputs plus the rate service it reads.
type conversionService struct {
	rates portssvc.RateReaderSvc
}

// NewConversionService creates the conversion view logic.
func NewConversionService(rates portssvc.RateReaderSvc) portssvc.ConversionSvcFacade {
	return &conversionService{rates: rates}
}

// Convert derives amount × rate[to], rounded to 2 decimal places for
// display. An unknown rate yields the "0.00" placeholder rather than an
// error: absence means "rate unknown", not "worthless".
func (s *conversionService) Convert(amount float64, to string) portssvc.ConversionResult {
	snap := s.rates.Snapshot()
	rate, known := snap.Rate(to)

	result := portssvc.ConversionResult{
		Amount:    amount,
		To:        to,
		Rate:      rate,
		RateKnown: known,
		Converted: "0.00",
		Loading:   s.rates.Loading(),
	}
	if known {
		result.Converted = mulFixed2(amount, rate)
	}
	return result
}

// QuickTable derives the conversions for the fixed round amounts at the
// current rate. Unknown rates produce zero-valued rows, as the client
// renders them.
func (s *conversionService) QuickTable(to string) []portssvc.QuickRow {
	snap := s.rates.Snapshot()
	rate, _ := snap.Rate(to)

	rows := make([]portssvc.QuickRow, len(quickAmounts))
	for i, amount := range quickAmounts {
		rows[i] = portssvc.QuickRow{Amount: amount, Converted: mulFixed2(amount, rate)}
	}
	return rows
}

// ConvertFavorite re-derives a stored favorite at current rates. The
// snapshot is expressed against the session's base currency, so the
// favorite's own pair is derived as amount × rate[to] / rate[from].
func (s *conversionService) ConvertFavorite(fav domain.SavedConversion) string {
	snap := s.rates.Snapshot()
	toRate, _ := snap.Rate(fav.To)
	fromRate, ok := snap.Rate(fav.From)
	if !ok || fromRate == 0 {
		fromRate = 1
	}

	value := decimal.NewFromFloat(fav.Amount).
		Mul(decimal.NewFromFloat(toRate)).
		Div(decimal.NewFromFloat(fromRate))
	return value.StringFixed(2)
}

func mulFixed2(amount, rate float64) string {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).StringFixed(2)
}
