package dto

import (
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
)

// ConversionResponse defines the data returned for a single conversion.
// Converted is pre-formatted with 2 decimal places.
type ConversionResponse struct {
	Amount    float64 `json:"amount"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	RateKnown bool    `json:"rateKnown"`
	Converted string  `json:"converted"`
	Loading   bool    `json:"loading"`
}

// QuickRowResponse is one row of the quick-reference table.
type QuickRowResponse struct {
	Amount    float64 `json:"amount"`
	Converted string  `json:"converted"`
}

// ToConversionResponse converts a services.ConversionResult to its DTO.
func ToConversionResponse(result portssvc.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Amount:    result.Amount,
		To:        result.To,
		Rate:      result.Rate,
		RateKnown: result.RateKnown,
		Converted: result.Converted,
		Loading:   result.Loading,
	}
}

// ToQuickTableResponse converts quick-reference rows to DTOs.
func ToQuickTableResponse(rows []portssvc.QuickRow) []QuickRowResponse {
	res := make([]QuickRowResponse, len(rows))
	for i, row := range rows {
		res[i] = QuickRowResponse{Amount: row.Amount, Converted: row.Converted}
	}
	return res
}
