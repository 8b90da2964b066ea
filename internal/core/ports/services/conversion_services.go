package services

import "github.com/ConversorDuo/currency_converter_app/internal/core/domain"

// ConversionResult is a derived conversion figure for display.
type ConversionResult struct {
	Amount    float64 // input amount
	To        string  // target currency code
	Rate      float64 // rate used; 0 when unknown
	RateKnown bool    // false when the snapshot has no rate for To
	Converted string  // amount × rate, 2 decimal places; "0.00" placeholder when unknown
	Loading   bool    // true while a rate refresh is in flight
}

// QuickRow is one row of the quick-reference table of round amounts.
type QuickRow struct {
	Amount    float64
	Converted string
}

// ConversionSvcFacade derives conversion figures from the current snapshot.
// It holds no state of its own beyond the rate service it reads.
type ConversionSvcFacade interface {
	// Convert derives amount × rate[to], rounded to 2 decimal places.
	Convert(amount float64, to string) ConversionResult

	// QuickTable derives the conversions for the fixed round amounts
	// (1, 5, 10, 50, 100) at the current rate.
	QuickTable(to string) []QuickRow

	// ConvertFavorite re-derives a stored favorite's value at current
	// rates (amount × rate[to] / rate[from]).
	ConvertFavorite(fav domain.SavedConversion) string
}
