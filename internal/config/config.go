package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "development-only-secret-change-me"

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL    string
	DatabaseDriver string
	StoreTimeout   time.Duration
	SeedAirports   bool

	// Server
	APIPort int

	// Logging
	LogLevel string

	// Authentication
	JWTSecret            string
	TokenTTL             time.Duration
	PasswordMinLength    int
	PasswordRequireMixed bool

	// Response contract
	FavoriteDeleteStatus int
	WorkoutDeleteStatus  int

	// Security
	AllowedOrigins string
	AppEnv         string

	// Rate Limiting
	RateLimitRequests float64
	RateLimitBurst    int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Required: DATABASE_URL
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	// DB_DRIVER (default: postgres)
	cfg.DatabaseDriver = strings.ToLower(os.Getenv("DB_DRIVER"))
	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = DriverPostgres
	}

	var err error

	// STORE_TIMEOUT (default: 5s)
	if cfg.StoreTimeout, err = durationEnv("STORE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	// SEED_AIRPORTS (default: true)
	if cfg.SeedAirports, err = boolEnv("SEED_AIRPORTS", true); err != nil {
		return nil, err
	}

	// API_PORT (default: 8080)
	if cfg.APIPort, err = intEnv("API_PORT", 8080); err != nil {
		return nil, err
	}

	// LOG_LEVEL (default: info)
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.AppEnv = os.Getenv("APP_ENV")
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	// JWT_SECRET falls back to a fixed value in development only
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" && cfg.AppEnv != "production" {
		cfg.JWTSecret = devJWTSecret
	}

	// TOKEN_TTL (default: 72h)
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 72*time.Hour); err != nil {
		return nil, err
	}

	// PASSWORD_MIN_LENGTH (default: 8)
	if cfg.PasswordMinLength, err = intEnv("PASSWORD_MIN_LENGTH", 8); err != nil {
		return nil, err
	}

	// PASSWORD_REQUIRE_MIXED (default: true)
	if cfg.PasswordRequireMixed, err = boolEnv("PASSWORD_REQUIRE_MIXED", true); err != nil {
		return nil, err
	}

	// FAVORITE_DELETE_STATUS (default: 204), WORKOUT_DELETE_STATUS (default: 200)
	if cfg.FavoriteDeleteStatus, err = intEnv("FAVORITE_DELETE_STATUS", http.StatusNoContent); err != nil {
		return nil, err
	}
	if cfg.WorkoutDeleteStatus, err = intEnv("WORKOUT_DELETE_STATUS", http.StatusOK); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")

	// Rate limiting configuration
	if rps := os.Getenv("RATE_LIMIT_REQUESTS"); rps != "" {
		if v, err := strconv.ParseFloat(rps, 64); err == nil {
			cfg.RateLimitRequests = v
		}
	} else {
		cfg.RateLimitRequests = 10.0
	}

	if burst := os.Getenv("RATE_LIMIT_BURST"); burst != "" {
		if v, err := strconv.Atoi(burst); err == nil {
			cfg.RateLimitBurst = v
		}
	} else {
		cfg.RateLimitBurst = 20
	}

	return cfg, nil
}

// LoadWithValidation loads and validates configuration, failing fast on errors
func LoadWithValidation() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Production-specific validation
	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProduction(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DatabaseURL cannot be empty")
	}
	switch c.DatabaseDriver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER must be one of postgres, mysql, sqlite")
	}
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("APIPort must be between 1 and 65535")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.PasswordMinLength < 1 {
		return fmt.Errorf("PASSWORD_MIN_LENGTH must be at least 1")
	}
	if !isDeleteStatus(c.FavoriteDeleteStatus) {
		return fmt.Errorf("FAVORITE_DELETE_STATUS must be 200 or 204")
	}
	if !isDeleteStatus(c.WorkoutDeleteStatus) {
		return fmt.Errorf("WORKOUT_DELETE_STATUS must be 200 or 204")
	}
	return nil
}

// ValidateProduction performs additional validation for production environment
func (c *Config) ValidateProduction() error {
	if c.JWTSecret == "" || c.JWTSecret == devJWTSecret {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}

	if c.AllowedOrigins == "" {
		return fmt.Errorf("ALLOWED_ORIGINS is required in production")
	}

	// Check for wildcard in production
	if strings.Contains(c.AllowedOrigins, "*") {
		return fmt.Errorf("wildcard (*) origins are not allowed in production")
	}

	if c.DatabaseDriver == DriverSQLite {
		return fmt.Errorf("sqlite is not allowed in production")
	}

	// Check for sslmode=disable in database URL
	if strings.Contains(c.DatabaseURL, "sslmode=disable") {
		return fmt.Errorf("sslmode=disable is not allowed in production")
	}

	return nil
}

// Origins returns the allowed CORS origins as a trimmed list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	origins := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogConfig logs configuration values (excluding secrets)
func (c *Config) LogConfig(logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.Int("api_port", c.APIPort),
		slog.String("db_driver", c.DatabaseDriver),
		slog.Duration("store_timeout", c.StoreTimeout),
		slog.Bool("seed_airports", c.SeedAirports),
		slog.String("log_level", c.LogLevel),
		slog.String("app_env", c.AppEnv),
		slog.Bool("jwt_secret_set", c.JWTSecret != "" && c.JWTSecret != devJWTSecret),
		slog.Duration("token_ttl", c.TokenTTL),
		slog.Int("password_min_length", c.PasswordMinLength),
		slog.Bool("password_require_mixed", c.PasswordRequireMixed),
		slog.Int("favorite_delete_status", c.FavoriteDeleteStatus),
		slog.Int("workout_delete_status", c.WorkoutDeleteStatus),
		slog.Bool("allowed_origins_set", c.AllowedOrigins != ""),
		slog.Float64("rate_limit_rps", c.RateLimitRequests),
		slog.Int("rate_limit_burst", c.RateLimitBurst),
	)
}

func isDeleteStatus(code int) bool {
	return code == http.StatusOK || code == http.StatusNoContent
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a valid boolean: %w", key, err)
	}
	return v, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	return v, nil
}
