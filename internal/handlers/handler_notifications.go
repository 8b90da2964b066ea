package handlers

import (
	"net/http"

	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests for the current notification.
type notificationHandler struct {
	notifier portssvc.NotifierSvc
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(n portssvc.NotifierSvc) *notificationHandler {
	return &notificationHandler{notifier: n}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notifier portssvc.NotifierSvc) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("/current", newNotificationHandler(notifier).getCurrent)
	}
}

// getCurrent godoc
// @Summary Get the currently visible notification
// @Description Retrieves the active notification, if one has not auto-dismissed yet. Returns 204 when there is none.
// @Tags notifications
// @Produce  json
// @Success 200 {object} dto.NotificationResponse
// @Success 204 "No active notification"
// @Router /notifications/current [get]
func (h *notificationHandler) getCurrent(c *gin.Context) {
	n := h.notifier.Current()
	if n == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(n))
}
