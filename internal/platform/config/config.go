package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend names accepted for FAVORITES_STORAGE.
const (
	StorageFile  = "file"
	StoragePgsql = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream rate providers
	RatesAPIURL     string `mapstructure:"RATES_API_URL"`
	HistoryAPIURL   string `mapstructure:"HISTORY_API_URL"`
	UpstreamTimeout time.Duration

	// Optional AI collaborator
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Favorites persistence
	FavoritesStorage string `mapstructure:"FAVORITES_STORAGE"`
	FavoritesFile    string `mapstructure:"FAVORITES_FILE"`
	DatabaseURL      string `mapstructure:"PGSQL_URL"`

	NotificationTTL time.Duration

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Rate limit for the insight endpoints, in limiter format (e.g. "10-M").
	InsightRateLimit string `mapstructure:"INSIGHT_RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATES_API_URL", "https://open.er-api.com")
	viper.SetDefault("HISTORY_API_URL", "https://api.frankfurter.app")
	viper.SetDefault("UPSTREAM_TIMEOUT", "10s")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("FAVORITES_STORAGE", StorageFile)
	viper.SetDefault("FAVORITES_FILE", "favorites.json")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("NOTIFICATION_TTL", "3s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("INSIGHT_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	cfg.HistoryAPIURL = viper.GetString("HISTORY_API_URL")
	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.FavoritesStorage = viper.GetString("FAVORITES_STORAGE")
	cfg.FavoritesFile = viper.GetString("FAVORITES_FILE")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.CORSAllowedOrigins = viper.GetString("CORS_ALLOWED_ORIGINS")
	cfg.InsightRateLimit = viper.GetString("INSIGHT_RATE_LIMIT")

	upstreamTimeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	upstreamTimeout, err := time.ParseDuration(upstreamTimeoutStr)
	if err != nil {
		upstreamTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", upstreamTimeoutStr, upstreamTimeout)
	}
	cfg.UpstreamTimeout = upstreamTimeout

	notificationTTLStr := viper.GetString("NOTIFICATION_TTL")
	notificationTTL, err := time.ParseDuration(notificationTTLStr)
	if err != nil {
		notificationTTL = 3 * time.Second
		log.Printf("Warning: Invalid value for NOTIFICATION_TTL ('%s'). Defaulting to %s.\n", notificationTTLStr, notificationTTL)
	}
	cfg.NotificationTTL = notificationTTL

	if cfg.FavoritesStorage != StorageFile && cfg.FavoritesStorage != StoragePgsql {
		log.Printf("Warning: Unknown FAVORITES_STORAGE ('%s'). Defaulting to %s.\n", cfg.FavoritesStorage, StorageFile)
		cfg.FavoritesStorage = StorageFile
	}
	if cfg.FavoritesStorage == StoragePgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: FAVORITES_STORAGE is pgsql but PGSQL_URL is not set. Falling back to file storage.")
		cfg.FavoritesStorage = StorageFile
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI insights will be disabled.")
	}

	return cfg, nil
}
