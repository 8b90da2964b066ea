package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ConversorDuo/currency_converter_app/internal/apperrors"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/dto"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// favoriteHandler handles HTTP requests for saved conversions.
type favoriteHandler struct {
	favoriteService   portssvc.FavoriteSvcFacade
	conversionService portssvc.ConversionSvcFacade
	sessionService    portssvc.SessionSvcFacade
}

// newFavoriteHandler creates a new favoriteHandler.
func newFavoriteHandler(fs portssvc.FavoriteSvcFacade, cs portssvc.ConversionSvcFacade, ss portssvc.SessionSvcFacade) *favoriteHandler {
	return &favoriteHandler{
		favoriteService:   fs,
		conversionService: cs,
		sessionService:    ss,
	}
}

// registerFavoriteRoutes registers routes related to saved conversions.
func registerFavoriteRoutes(rg *gin.RouterGroup, favoriteService portssvc.FavoriteSvcFacade, conversionService portssvc.ConversionSvcFacade, sessionService portssvc.SessionSvcFacade) {
	h := newFavoriteHandler(favoriteService, conversionService, sessionService)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.listFavorites)
		favorites.POST("", h.createFavorite)
		favorites.DELETE("/:id", h.removeFavorite)
		favorites.POST("/:id/select", h.selectFavorite)
	}
}

// listFavorites godoc
// @Summary List saved conversions
// @Description Retrieves all saved conversions, newest first, each re-converted at current rates
// @Tags favorites
// @Produce  json
// @Success 200 {array} dto.FavoriteResponse
// @Router /favorites [get]
func (h *favoriteHandler) listFavorites(c *gin.Context) {
	favorites := h.favoriteService.ListFavorites(c.Request.Context())

	res := make([]dto.FavoriteResponse, len(favorites))
	for i, fav := range favorites {
		res[i] = dto.ToFavoriteResponse(&fav, h.conversionService.ConvertFavorite(fav))
	}
	c.JSON(http.StatusOK, res)
}

// createFavorite godoc
// @Summary Save a conversion
// @Description Saves the given conversion; the session's current amount and pair are used when the body is empty
// @Tags favorites
// @Accept  json
// @Produce  json
// @Param   favorite body dto.CreateFavoriteRequest false "Conversion to save"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Already saved"
// @Failure 500 {object} map[string]string "Failed to save favorite"
// @Router /favorites [post]
func (h *favoriteHandler) createFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := h.sessionService.State()
	amount, from, to := state.Amount, state.From, state.To
	if c.Request.ContentLength > 0 {
		var req dto.CreateFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for CreateFavorite", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
		amount, from, to = req.Amount, req.From, req.To
	}

	fav, err := h.favoriteService.SaveFavorite(c.Request.Context(), amount, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Already saved"})
		} else {
			logger.Error("Failed to save favorite", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFavoriteResponse(fav, h.conversionService.ConvertFavorite(*fav)))
}

// removeFavorite godoc
// @Summary Remove a saved conversion
// @Description Deletes exactly the saved conversion with the given id
// @Tags favorites
// @Produce  json
// @Param   id path string true "Favorite ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]string "Favorite not found"
// @Failure 500 {object} map[string]string "Failed to remove favorite"
// @Router /favorites/{id} [delete]
func (h *favoriteHandler) removeFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		} else {
			logger.Error("Failed to remove favorite", slog.String("favorite_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// selectFavorite godoc
// @Summary Load a saved conversion into the session
// @Description Restores the favorite's amount and pair into the session state and switches back to the converter view
// @Tags favorites
// @Produce  json
// @Param   id path string true "Favorite ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} map[string]string "Favorite not found"
// @Router /favorites/{id}/select [post]
func (h *favoriteHandler) selectFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	state, err := h.sessionService.SelectFavorite(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		} else {
			logger.Error("Failed to select favorite", slog.String("favorite_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select favorite"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionStateResponse(state))
}
