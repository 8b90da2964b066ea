package services_test

import (
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/ConversorDuo/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_AutoDismissesAfterTTL(t *testing.T) {
	notifier := services.NewNotificationService(30 * time.Millisecond)

	notifier.Publish(domain.Notification{Message: "hola", Severity: domain.SeveritySuccess})

	current := notifier.Current()
	require.NotNil(t, current)
	assert.Equal(t, "hola", current.Message)

	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNotification_NewerPublishReplacesAndOutlivesOldTimer(t *testing.T) {
	notifier := services.NewNotificationService(40 * time.Millisecond)

	notifier.Publish(domain.Notification{Message: "first", Severity: domain.SeverityWarning})
	time.Sleep(25 * time.Millisecond)
	notifier.Publish(domain.Notification{Message: "second", Severity: domain.SeverityError})

	// Past the first notification's would-be expiry, the second must still
	// be visible.
	time.Sleep(25 * time.Millisecond)
	current := notifier.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)

	assert.Eventually(t, func() bool {
		return notifier.Current() == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNotification_NoCurrentInitially(t *testing.T) {
	notifier := services.NewNotificationService(0)
	assert.Nil(t, notifier.Current())
}
