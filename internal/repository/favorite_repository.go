package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data access.
// Every method is scoped to the owning user.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByID(ctx context.Context, userID, id string) (*models.Favorite, error)
	List(ctx context.Context, userID string) ([]models.Favorite, error)
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Favorite, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// favoriteRepository implements FavoriteRepository using GORM
type favoriteRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewFavoriteRepository creates a new FavoriteRepository instance
func NewFavoriteRepository(db *gorm.DB, timeout time.Duration) FavoriteRepository {
	return &favoriteRepository{db: db, timeout: timeout}
}

// Create persists a favorite and loads its airport
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(favorite).Error; err != nil {
			return err
		}
		return tx.Preload("Airport").Where("id = ?", favorite.ID).First(favorite).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create favorite: %w", translate(err))
	}
	return nil
}

// GetByID retrieves a favorite with its airport
func (r *favoriteRepository) GetByID(ctx context.Context, userID, id string) (*models.Favorite, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var favorite models.Favorite
	result := r.db.WithContext(ctx).
		Preload("Airport").
		Where("id = ? AND user_id = ?", id, userID).
		First(&favorite)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get favorite: %w", translate(result.Error))
	}
	return &favorite, nil
}

// List retrieves all favorites of a user, oldest first
func (r *favoriteRepository) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	favorites := []models.Favorite{}
	result := r.db.WithContext(ctx).
		Preload("Airport").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", translate(result.Error))
	}
	return favorites, nil
}

// Update applies only the supplied columns and returns the merged record
func (r *favoriteRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Favorite, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var favorite models.Favorite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the row so concurrent partial updates apply one after another
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&favorite).Omit(clause.Associations).Updates(fields).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Airport").Where("id = ?", id).First(&favorite).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update favorite: %w", translate(err))
	}
	return &favorite, nil
}

// Delete deletes a favorite by its ID
func (r *favoriteRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every favorite of a user and reports how many went
func (r *favoriteRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear favorites: %w", translate(result.Error))
	}
	return result.RowsAffected, nil
}
