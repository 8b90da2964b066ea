package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"

	"github.com/ConversorDuo/currency_converter_app/internal/adapters/database/pgsql"
	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/erapi"
	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/frankfurter"
	"github.com/ConversorDuo/currency_converter_app/internal/adapters/providers/gemini"
	"github.com/ConversorDuo/currency_converter_app/internal/adapters/storage/jsonfile"
	portsrepo "github.com/ConversorDuo/currency_converter_app/internal/core/ports/repositories"
	"github.com/ConversorDuo/currency_converter_app/internal/core/services"
	"github.com/ConversorDuo/currency_converter_app/internal/handlers"
	"github.com/ConversorDuo/currency_converter_app/internal/middleware"
	"github.com/ConversorDuo/currency_converter_app/internal/platform/config"
	"github.com/ConversorDuo/currency_converter_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/errgroup"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Currency Converter API
// @version 1.0
// @description Backend for the currency conversion app: live rates, history charts, favorites, and AI insights.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	favoriteRepo := buildFavoriteRepo(ctx, cfg, logger)

	providers, err := buildProviders(cfg)
	if err != nil {
		logger.Error("Failed to initialize upstream providers", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(ctx, cfg, portsrepo.RepositoryProvider{FavoriteRepo: favoriteRepo}, providers, logger)

	// Warm the rate snapshot and history series for the default view so the
	// first client request already has data. Failures only log: the services
	// keep retrying on demand.
	state := serviceContainer.Session.State()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serviceContainer.Rates.Refresh(gctx, state.From)
	})
	g.Go(func() error {
		return serviceContainer.History.Refresh(gctx, state.From, state.To, state.Range)
	})
	if err := g.Wait(); err != nil {
		logger.Warn("Startup data warmup incomplete", slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, buildInsightLimiter(cfg, logger))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildFavoriteRepo selects the favorites backend: a JSON file by default,
// Postgres when configured. The Postgres path also applies migrations.
func buildFavoriteRepo(ctx context.Context, cfg *config.Config, logger *slog.Logger) portsrepo.FavoriteRepositoryFacade {
	if cfg.FavoritesStorage != config.StoragePgsql {
		logger.Info("Using file-backed favorites storage", slog.String("path", cfg.FavoritesFile))
		return jsonfile.NewFavoriteRepository(cfg.FavoritesFile, logger)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database connection pool established.")

	runMigrations(cfg, logger)

	return pgsql.NewPgxFavoriteRepository(dbPool)
}

// runMigrations applies all pending "up" migrations from the migrations
// directory.
func runMigrations(cfg *config.Config, logger *slog.Logger) {
	logger.Info("Running database migrations...")

	// Open a standard sql.DB connection for migrations, using the pgx stdlib
	// driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
}

// buildProviders wires the upstream clients. The insight provider stays nil
// without an API key; the insight service degrades to "no insight".
func buildProviders(cfg *config.Config) (services.Providers, error) {
	rateProvider, err := erapi.New(cfg.RatesAPIURL, cfg.UpstreamTimeout)
	if err != nil {
		return services.Providers{}, err
	}

	historyProvider, err := frankfurter.New(cfg.HistoryAPIURL, cfg.UpstreamTimeout)
	if err != nil {
		return services.Providers{}, err
	}

	providers := services.Providers{
		Rates:   rateProvider,
		History: historyProvider,
	}
	if cfg.GeminiAPIKey != "" {
		providers.Insight = gemini.New(gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
	}
	return providers, nil
}

// buildInsightLimiter creates the in-memory rate limiter for the AI routes.
func buildInsightLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	limiterRate, err := limiter.NewRateFromFormatted(cfg.InsightRateLimit)
	if err != nil {
		logger.Warn("Invalid INSIGHT_RATE_LIMIT, insight endpoints will not be limited",
			slog.String("value", cfg.InsightRateLimit), slog.String("error", err.Error()))
		return nil
	}
	return limiter.New(memory.NewStore(), limiterRate)
}

// corsConfig derives the CORS policy from configuration.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if cfg.CORSAllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	return corsCfg
}
