package database

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/welldanyogia/webrana-resource-api/internal/config"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection pool configuration
const (
	DefaultMaxIdleConns    = 10
	DefaultMaxOpenConns    = 100
	DefaultConnMaxLifetime = time.Hour
	DefaultConnMaxIdleTime = 10 * time.Minute
)

// Connect opens the database selected by driver and configures the pool.
func Connect(driver, databaseURL string, debug bool) (*gorm.DB, error) {
	// Validate SSL mode in production
	env := os.Getenv("APP_ENV")
	if env == "production" && driver == config.DriverPostgres {
		if err := validateSSLMode(databaseURL); err != nil {
			return nil, err
		}
	}

	dialector, err := dialectorFor(driver, databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn), debug),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	if err := configureConnectionPool(db, driver); err != nil {
		return nil, err
	}

	slog.Info("Connected to database successfully", slog.String("driver", driver))
	return db, nil
}

// SlowQueryThreshold is the duration past which GORM logs a query as slow
const SlowQueryThreshold = 200 * time.Millisecond

// newGormLogger routes GORM output through w. Lookups that miss are an
// ordinary 404 path, so record-not-found is never logged.
func newGormLogger(w logger.Writer, debug bool) logger.Interface {
	logMode := logger.Warn
	if debug {
		logMode = logger.Info
	}
	return logger.New(w, logger.Config{
		SlowThreshold:             SlowQueryThreshold,
		LogLevel:                  logMode,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// dialectorFor maps a driver name onto its GORM dialector.
func dialectorFor(driver, databaseURL string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(databaseURL), nil
	case config.DriverMySQL:
		return mysql.Open(databaseURL), nil
	case config.DriverSQLite:
		return sqlite.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// validateSSLMode ensures SSL is enabled in production
func validateSSLMode(databaseURL string) error {
	// Check if sslmode is explicitly disabled
	if strings.Contains(databaseURL, "sslmode=disable") {
		return fmt.Errorf("SSL mode cannot be disabled in production")
	}

	// If no sslmode specified, it's okay (defaults to prefer/require depending on server)
	return nil
}

// configureConnectionPool sets up connection pool limits
func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite serializes writers; a single connection also keeps :memory: databases shared
	if driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	// Set connection pool limits
	sqlDB.SetMaxIdleConns(DefaultMaxIdleConns)
	sqlDB.SetMaxOpenConns(DefaultMaxOpenConns)
	sqlDB.SetConnMaxLifetime(DefaultConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(DefaultConnMaxIdleTime)

	return nil
}

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Airport{},
		&models.Favorite{},
		&models.Workout{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
