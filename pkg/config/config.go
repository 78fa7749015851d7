package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// DBTimeout bounds every individual store call.
	DBTimeout time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Attachment uploads.
	UploadDir   string
	MaxFileSize int64

	// Per-IP rate limit for the public auth endpoints, e.g. "10-M".
	AuthRateLimit string

	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// The database URL is mandatory: without a reachable store there is nothing
// this service can do, so its absence fails startup.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_TIMEOUT", "10s")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "orgledger-backend")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("MAX_FILE_SIZE", int64(10485760)) // 10MB
	viper.SetDefault("AUTH_RATE_LIMIT", "20-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}

	dbTimeout, err := time.ParseDuration(viper.GetString("DB_TIMEOUT"))
	if err != nil || dbTimeout <= 0 {
		dbTimeout = 10 * time.Second
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = 168 * time.Hour
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DBTimeout = dbTimeout
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.MaxFileSize = viper.GetInt64("MAX_FILE_SIZE")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	return cfg, nil
}
