package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AirportRepository defines the interface for the airport catalog
type AirportRepository interface {
	GetByID(ctx context.Context, code string) (*models.Airport, error)
	List(ctx context.Context) ([]models.Airport, error)
	Seed(ctx context.Context, airports []models.Airport) error
}

// airportRepository implements AirportRepository using GORM
type airportRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewAirportRepository creates a new AirportRepository instance
func NewAirportRepository(db *gorm.DB, timeout time.Duration) AirportRepository {
	return &airportRepository{db: db, timeout: timeout}
}

// GetByID retrieves an airport by its IATA code, case-insensitively
func (r *airportRepository) GetByID(ctx context.Context, code string) (*models.Airport, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var airport models.Airport
	code = strings.ToUpper(strings.TrimSpace(code))
	result := r.db.WithContext(ctx).Where("id = ?", code).First(&airport)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get airport: %w", translate(result.Error))
	}
	return &airport, nil
}

// List retrieves the catalog ordered by IATA code
func (r *airportRepository) List(ctx context.Context) ([]models.Airport, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var airports []models.Airport
	result := r.db.WithContext(ctx).Order("id ASC").Find(&airports)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list airports: %w", translate(result.Error))
	}
	return airports, nil
}

// Seed inserts the given airports, leaving existing codes untouched
func (r *airportRepository) Seed(ctx context.Context, airports []models.Airport) error {
	if len(airports) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&airports)
	if result.Error != nil {
		return fmt.Errorf("failed to seed airports: %w", translate(result.Error))
	}
	return nil
}
