package dto

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// UpdateAmountRequest sets the session amount.
type UpdateAmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// UpdatePairRequest sets the session conversion pair.
type UpdatePairRequest struct {
	From string `json:"from" binding:"required,uppercase,len=3,catalog"`
	To   string `json:"to" binding:"required,uppercase,len=3,catalog"`
}

// UpdateRangeRequest sets the history time range.
type UpdateRangeRequest struct {
	Range string `json:"range" binding:"required"`
}

// UpdateTabRequest switches the active view.
type UpdateTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// UpdateThemeRequest switches the color theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

// SessionStateResponse defines the data returned for the application state.
type SessionStateResponse struct {
	ActiveTab string  `json:"activeTab"`
	Theme     string  `json:"theme"`
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Range     string  `json:"range"`
}

// ToSessionStateResponse converts a domain.AppState to its DTO.
func ToSessionStateResponse(state domain.AppState) SessionStateResponse {
	return SessionStateResponse{
		ActiveTab: string(state.ActiveTab),
		Theme:     string(state.Theme),
		Amount:    state.Amount,
		From:      state.From,
		To:        state.To,
		Range:     string(state.Range),
	}
}
