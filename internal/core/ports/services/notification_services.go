package services

import "github.com/ConversorDuo/currency_converter_app/internal/core/domain"

// NotifierSvc manages the single transient notification slot. Publishing
// replaces any prior notification and restarts the auto-dismiss timer.
type NotifierSvc interface {
	Publish(n domain.Notification)

	// Current returns the visible notification, or nil after dismissal.
	Current() *domain.Notification
}
