package dto

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// NotificationResponse defines the currently visible notification.
type NotificationResponse struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		Message:  n.Message,
		Severity: string(n.Severity),
	}
}
