package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for the rate snapshot and conversions.
type rateHandler struct {
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvcFacade
	sessionService    portssvc.SessionSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, cs portssvc.ConversionSvcFacade, ss portssvc.SessionSvcFacade) *rateHandler {
	return &rateHandler{
		rateService:       rs,
		conversionService: cs,
		sessionService:    ss,
	}
}

// registerRateRoutes registers routes related to rates and conversion.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, conversionService portssvc.ConversionSvcFacade, sessionService portssvc.SessionSvcFacade) {
	h := newRateHandler(rateService, conversionService, sessionService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getSnapshot)
		rates.POST("/refresh", h.refreshRates)
	}

	rg.GET("/convert", h.convert)
	rg.GET("/convert/quick", h.quickTable)
}

// getSnapshot godoc
// @Summary Get the current rate snapshot
// @Description Retrieves the last fetched rate mapping with the provider timestamp and loading flag
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSnapshotResponse
// @Router /rates [get]
func (h *rateHandler) getSnapshot(c *gin.Context) {
	snap := h.rateService.Snapshot()
	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snap, h.rateService.Loading()))
}

// refreshRates godoc
// @Summary Refresh the rate snapshot
// @Description Fetches a fresh rate mapping from the upstream provider. The base defaults to the session's source currency.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   refresh body dto.RefreshRatesRequest false "Base currency override"
// @Success 200 {object} dto.RateSnapshotResponse
// @Failure 502 {object} map[string]string "Upstream provider failed"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base := h.sessionService.State().From
	var req dto.RefreshRatesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for RefreshRates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		base = req.Base
	}

	if err := h.rateService.Refresh(c.Request.Context(), base); err != nil {
		logger.Error("Rate refresh failed", slog.String("base", base), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(h.rateService.Snapshot(), h.rateService.Loading()))
}

// convert godoc
// @Summary Convert an amount at the current rate
// @Description Derives the converted figure for an amount and target currency. Both default to the session state when omitted.
// @Tags conversion
// @Produce  json
// @Param   amount query number false "Amount to convert"
// @Param   to query string false "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /convert [get]
func (h *rateHandler) convert(c *gin.Context) {
	state := h.sessionService.State()

	amount := state.Amount
	if raw := c.Query("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
			return
		}
		amount = parsed
	}

	to := state.To
	if raw := c.Query("to"); raw != "" {
		to = raw
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(h.conversionService.Convert(amount, to)))
}

// quickTable godoc
// @Summary Get the quick-reference conversion table
// @Description Derives conversions of the fixed round amounts at the current rate
// @Tags conversion
// @Produce  json
// @Param   to query string false "Target currency code, defaults to the session target"
// @Success 200 {array} dto.QuickRowResponse
// @Router /convert/quick [get]
func (h *rateHandler) quickTable(c *gin.Context) {
	to := c.Query("to")
	if to == "" {
		to = h.sessionService.State().To
	}
	c.JSON(http.StatusOK, dto.ToQuickTableResponse(h.conversionService.QuickTable(to)))
}
