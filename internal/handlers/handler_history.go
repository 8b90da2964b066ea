package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/ConversorDuo/currency_converter_app/internal/utils/chart"
	"github.com/gin-gonic/gin"
)

// historyHandler handles HTTP requests for the historical series and its
// chart geometry.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
	plotSpec       chart.PlotSpec
}

// newHistoryHandler creates a new historyHandler.
func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{
		historyService: hs,
		plotSpec:       chart.DefaultPlotSpec(),
	}
}

// registerHistoryRoutes registers routes related to the history chart.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("", h.getHistory)
		history.GET("/hover", h.hover)
	}
}

// getHistory godoc
// @Summary Get the historical series with chart geometry
// @Description Retrieves the current (date, rate) series plus the plotted screen coordinates for the client's viewBox
// @Tags history
// @Produce  json
// @Success 200 {object} dto.HistoryResponse
// @Router /history [get]
func (h *historyHandler) getHistory(c *gin.Context) {
	series := h.historyService.Series()
	geo, drawable := chart.Build(series, h.plotSpec)
	c.JSON(http.StatusOK, dto.ToHistoryResponse(series, geo, drawable, h.historyService.Loading()))
}

// hover godoc
// @Summary Hit-test a pointer position against the chart
// @Description Maps an x coordinate in the chart's coordinate space to the nearest series sample and its tooltip placement
// @Tags history
// @Produce  json
// @Param   x query number true "Pointer x position in chart coordinates"
// @Success 200 {object} dto.HoverResponse
// @Failure 400 {object} map[string]string "Invalid x position"
// @Failure 404 {object} map[string]string "Not enough data to chart"
// @Router /history/hover [get]
func (h *historyHandler) hover(c *gin.Context) {
	x, err := strconv.ParseFloat(c.Query("x"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "x must be a number"})
		return
	}

	series := h.historyService.Series()
	geo, drawable := chart.Build(series, h.plotSpec)
	if !drawable {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not enough data to chart"})
		return
	}

	index, ok := chart.NearestIndex(x, len(series), h.plotSpec)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not enough data to chart"})
		return
	}

	focus := geo.Points[index]
	placement := chart.TooltipPlacement(focus, h.plotSpec)
	c.JSON(http.StatusOK, dto.ToHoverResponse(index, series[index], focus, placement))
}
