package handlers

import (
	"net/http"

	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// insightHandler handles HTTP requests for AI currency insights.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
	sessionService portssvc.SessionSvcFacade
}

// newInsightHandler creates a new insightHandler.
func newInsightHandler(is portssvc.InsightSvcFacade, ss portssvc.SessionSvcFacade) *insightHandler {
	return &insightHandler{
		insightService: is,
		sessionService: ss,
	}
}

// registerInsightRoutes registers routes related to AI insights. The extra
// middleware (rate limiting) applies to this group only.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade, sessionService portssvc.SessionSvcFacade, extra ...gin.HandlerFunc) {
	h := newInsightHandler(insightService, sessionService)

	insights := rg.Group("/insights", extra...)
	{
		insights.POST("", h.getInsight)
		insights.POST("/translate", h.translateInsight)
	}
}

// getInsight godoc
// @Summary Get an AI insight for a conversion
// @Description Asks the AI collaborator for market context on a pair. Returns 204 when the feature is unavailable or the model fails; everything else keeps working.
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   insight body dto.InsightRequest false "Conversion to analyze; defaults to the session state"
// @Success 200 {object} dto.InsightResponse
// @Success 204 "No insight available"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /insights [post]
func (h *insightHandler) getInsight(c *gin.Context) {
	state := h.sessionService.State()
	from, to, amount := state.From, state.To, state.Amount
	if c.Request.ContentLength > 0 {
		var req dto.InsightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		from, to, amount = req.From, req.To, req.Amount
	}

	insight := h.insightService.GetInsight(c.Request.Context(), from, to, amount)
	if insight == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightResponse(insight))
}

// translateInsight godoc
// @Summary Translate an insight
// @Description Re-renders an insight in the target language keeping its structure. Returns 204 when translation is unavailable.
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   translate body dto.TranslateInsightRequest true "Insight and target language"
// @Success 200 {object} dto.InsightResponse
// @Success 204 "No translation available"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /insights/translate [post]
func (h *insightHandler) translateInsight(c *gin.Context) {
	var req dto.TranslateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	translated := h.insightService.TranslateInsight(c.Request.Context(), req.Insight.ToDomainInsight(), req.TargetLang)
	if translated == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightResponse(translated))
}
