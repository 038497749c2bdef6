package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/handlers"
	"github.com/welldanyogia/webrana-resource-api/internal/api/middleware"
	"github.com/welldanyogia/webrana-resource-api/internal/auth"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"gorm.io/gorm"
)

// Rate limiter defaults used when RouterConfig leaves them unset
const (
	DefaultRateLimit = 10.0
	DefaultRateBurst = 20
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	// Ctx bounds background work started by the router (limiter cleanup)
	Ctx      context.Context
	DB       *gorm.DB
	Logger   *slog.Logger
	Security *logger.SecurityLogger

	// Authenticator verifies tokens. When nil a Provider is built from Auth
	// over the user table in DB.
	Authenticator auth.Authenticator
	Auth          auth.Options

	// Hub receives change events and serves /api/events. Nil disables both.
	Hub *events.Hub

	StoreTimeout   time.Duration
	AllowedOrigins []string
	Production     bool
	RateLimit      float64 // requests per second per IP
	RateBurst      int

	FavoriteDeleteStatus int
	WorkoutDeleteStatus  int
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	ctx := cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	security := cfg.Security
	if security == nil {
		security = logger.NewSecurityLogger(cfg.Logger)
	}

	// 1. Recover from panics
	e.Use(middleware.Recover())

	// 2. Security headers (applied to all responses)
	e.Use(middleware.SecureHeaders())

	// 3. CORS
	e.Use(middleware.SecureCORS(cfg.AllowedOrigins, cfg.Production))

	// 4. Rate limiting
	rps, burst := cfg.RateLimit, cfg.RateBurst
	if rps <= 0 {
		rps = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultRateBurst
	}
	e.Use(middleware.RateLimiterWithConfig(ctx, rps, burst, security))

	// 5. Request logging
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB, cfg.StoreTimeout)
	airportRepo := repository.NewAirportRepository(cfg.DB, cfg.StoreTimeout)
	favoriteRepo := repository.NewFavoriteRepository(cfg.DB, cfg.StoreTimeout)
	workoutRepo := repository.NewWorkoutRepository(cfg.DB, cfg.StoreTimeout)

	authenticator := cfg.Authenticator
	if authenticator == nil {
		authenticator = auth.NewProvider(userRepo, cfg.Auth)
	}

	var publisher events.Publisher
	if cfg.Hub != nil {
		publisher = cfg.Hub
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	userHandler := handlers.NewUserHandler(authenticator, security)
	airportHandler := handlers.NewAirportHandler(airportRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo, airportRepo, publisher, cfg.FavoriteDeleteStatus)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, publisher, cfg.WorkoutDeleteStatus)

	requireUser := middleware.BearerAuth(authenticator, security)

	// Health routes (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Airport catalog (public)
	airports := e.Group("/airports")
	airports.GET("", airportHandler.List)
	airports.POST("/distance", airportHandler.Distance)
	airports.GET("/:id", airportHandler.Get)

	// Favorite routes
	favorites := e.Group("/favorites", requireUser)
	favorites.GET("", favoriteHandler.List)
	favorites.POST("", favoriteHandler.Create)
	favorites.DELETE("/clear_all", favoriteHandler.ClearAll)
	favorites.GET("/:id", favoriteHandler.Get)
	favorites.PUT("/:id", favoriteHandler.Update)
	favorites.PATCH("/:id", favoriteHandler.Update)
	favorites.DELETE("/:id", favoriteHandler.Delete)

	api := e.Group("/api")

	// Account routes
	users := api.Group("/user")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	// Workout routes
	workouts := api.Group("/workouts", requireUser)
	workouts.GET("", workoutHandler.List)
	workouts.POST("", workoutHandler.Create)
	workouts.GET("/:id", workoutHandler.Get)
	workouts.PATCH("/:id", workoutHandler.Update)
	workouts.DELETE("/:id", workoutHandler.Delete)

	// Change feed
	if cfg.Hub != nil {
		eventsHandler := handlers.NewEventsHandler(cfg.Hub, events.NewSecureUpgrader(cfg.AllowedOrigins, security), cfg.Logger)
		api.GET("/events", eventsHandler.Stream, middleware.BearerAuthWithConfig(middleware.BearerAuthConfig{
			Verifier:        authenticator,
			Security:        security,
			AllowQueryToken: true,
		}))
	}

	return e
}
