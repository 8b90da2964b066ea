package services

import (
	"sync"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
)

// DefaultNotificationTTL matches the client's 3-second toast lifetime.
const DefaultNotificationTTL = 3 * time.Second

// notificationService holds the single visible notification. Publishing
// replaces the current one and restarts the auto-dismiss timer, so an old
// timer can never dismiss a newer notification.
type notificationService struct {
	ttl time.Duration

	mu      sync.Mutex
	current *domain.Notification
	timer   *time.Timer
}

// NewNotificationService creates the one-slot notifier. ttl <= 0 falls back
// to DefaultNotificationTTL.
func NewNotificationService(ttl time.Duration) portssvc.NotifierSvc {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &notificationService{ttl: ttl}
}

func (s *notificationService) Publish(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	published := n
	s.current = &published
	s.timer = time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.current == &published {
			s.current = nil
		}
	})
}

func (s *notificationService) Current() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}
