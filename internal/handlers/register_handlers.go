package handlers

import (
	"net/http"

	"github.com/ConversorDuo/currency_converter_app/cmd/docs"
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	portssvc "github.com/ConversorDuo/currency_converter_app/internal/core/ports/services"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/ConversorDuo/currency_converter_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// registerCustomValidators wires the "catalog" binding tag, which accepts
// only currency codes present in the supported catalog.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
			return domain.KnownCurrency(fl.Field().String())
		})
	}
}

// getHome godoc
// @Summary Show the status of server.
// @Description get the status of server.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello World From Currency Converter API v1"})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	insightLimiter *limiter.Limiter,
) {
	registerCustomValidators()

	r.GET("/", getHome)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, services, insightLimiter)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	insightLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerCurrencyRoutes(v1, services.Currency)
	registerRateRoutes(v1, services.Rates, services.Conversion, services.Session)
	registerHistoryRoutes(v1, services.History)
	registerFavoriteRoutes(v1, services.Favorites, services.Conversion, services.Session)
	registerSessionRoutes(v1, services.Session)
	registerNotificationRoutes(v1, services.Notifier)

	// The AI endpoints are the only ones calling a metered model, so they
	// get their own rate limit.
	if insightLimiter != nil {
		registerInsightRoutes(v1, services.Insight, services.Session, middleware.RateLimit(insightLimiter))
	} else {
		registerInsightRoutes(v1, services.Insight, services.Session)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
