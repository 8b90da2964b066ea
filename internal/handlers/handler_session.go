package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests for the application state.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

// newSessionHandler creates a new sessionHandler.
func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
	}
}

// registerSessionRoutes registers routes related to the application state.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	session := rg.Group("/session")
	{
		session.GET("", h.getState)
		session.PUT("/amount", h.setAmount)
		session.PUT("/pair", h.setPair)
		session.PUT("/range", h.setRange)
		session.PUT("/tab", h.setTab)
		session.PUT("/theme", h.setTheme)
		session.POST("/swap", h.swap)
	}
}

// getState godoc
// @Summary Get the application state
// @Description Retrieves the active view, theme, amount, pair, and history range
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionStateResponse
// @Router /session [get]
func (h *sessionHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.State()))
}

// setAmount godoc
// @Summary Set the conversion amount
// @Description Updates the amount being converted; no refresh is triggered
// @Tags session
// @Accept  json
// @Produce  json
// @Param   amount body dto.UpdateAmountRequest true "New amount"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /session/amount [put]
func (h *sessionHandler) setAmount(c *gin.Context) {
	var req dto.UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.SetAmount(req.Amount)))
}

// setPair godoc
// @Summary Set the conversion pair
// @Description Updates the source and target currencies and refreshes rates and history
// @Tags session
// @Accept  json
// @Produce  json
// @Param   pair body dto.UpdatePairRequest true "New pair"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} map[string]string "Unknown currency"
// @Router /session/pair [put]
func (h *sessionHandler) setPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.sessionService.SetPair(c.Request.Context(), req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set pair", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set pair"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(state))
}

// setRange godoc
// @Summary Set the history time range
// @Description Updates the chart range and refreshes the series
// @Tags session
// @Accept  json
// @Produce  json
// @Param   range body dto.UpdateRangeRequest true "New range (1D, 5D, 1M, 6M, 1A, 6A, TODO)"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} map[string]string "Unknown range"
// @Router /session/range [put]
func (h *sessionHandler) setRange(c *gin.Context) {
	var req dto.UpdateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	timeRange, ok := domain.ParseTimeRange(req.Range)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown range: " + req.Range})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.SetRange(c.Request.Context(), timeRange)))
}

// setTab godoc
// @Summary Switch the active view
// @Description Changes which tab is active (inicio, favoritos, ajustes)
// @Tags session
// @Accept  json
// @Produce  json
// @Param   tab body dto.UpdateTabRequest true "New tab"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} map[string]string "Unknown tab"
// @Router /session/tab [put]
func (h *sessionHandler) setTab(c *gin.Context) {
	var req dto.UpdateTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tab, ok := domain.ParseTab(req.Tab)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tab: " + req.Tab})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.SetTab(tab)))
}

// setTheme godoc
// @Summary Switch the color theme
// @Description Changes the theme between light and dark
// @Tags session
// @Accept  json
// @Produce  json
// @Param   theme body dto.UpdateThemeRequest true "New theme"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} map[string]string "Unknown theme"
// @Router /session/theme [put]
func (h *sessionHandler) setTheme(c *gin.Context) {
	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.SetTheme(domain.Theme(req.Theme))))
}

// swap godoc
// @Summary Swap the conversion pair
// @Description Exchanges the source and target currencies atomically and refreshes rates and history
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionStateResponse
// @Router /session/swap [post]
func (h *sessionHandler) swap(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSessionStateResponse(h.sessionService.Swap(c.Request.Context())))
}
