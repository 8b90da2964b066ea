package dto

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// CreateFavoriteRequest defines the data needed to save a conversion.
type CreateFavoriteRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	From   string  `json:"from" binding:"required,uppercase,len=3,catalog"`
	To     string  `json:"to" binding:"required,uppercase,len=3,catalog"`
}

// FavoriteResponse defines the data returned for a saved conversion.
// Converted is re-derived at current rates at response time.
type FavoriteResponse struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	FromFlag  string  `json:"fromFlag"`
	ToFlag    string  `json:"toFlag"`
	Converted string  `json:"converted"`
}

// ToFavoriteResponse converts a domain.SavedConversion to its DTO.
func ToFavoriteResponse(fav *domain.SavedConversion, converted string) FavoriteResponse {
	return FavoriteResponse{
		ID:        fav.ID,
		Amount:    fav.Amount,
		From:      fav.From,
		To:        fav.To,
		FromFlag:  fav.FromFlag,
		ToFlag:    fav.ToFlag,
		Converted: converted,
	}
}
