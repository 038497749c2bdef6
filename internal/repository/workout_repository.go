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

// WorkoutRepository defines the interface for workout data access.
// Every method is scoped to the owning user.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, userID, id string) (*models.Workout, error)
	List(ctx context.Context, userID string) ([]models.Workout, error)
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Workout, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// workoutRepository implements WorkoutRepository using GORM
type workoutRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewWorkoutRepository creates a new WorkoutRepository instance
func NewWorkoutRepository(db *gorm.DB, timeout time.Duration) WorkoutRepository {
	return &workoutRepository{db: db, timeout: timeout}
}

// Create creates a new workout
func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(workout)
	if result.Error != nil {
		return fmt.Errorf("failed to create workout: %w", translate(result.Error))
	}
	return nil
}

// GetByID retrieves a workout by its ID
func (r *workoutRepository) GetByID(ctx context.Context, userID, id string) (*models.Workout, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var workout models.Workout
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&workout)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", translate(result.Error))
	}
	return &workout, nil
}

// List retrieves all workouts of a user, newest first
func (r *workoutRepository) List(ctx context.Context, userID string) ([]models.Workout, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	workouts := []models.Workout{}
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", translate(result.Error))
	}
	return workouts, nil
}

// Update applies only the supplied columns and returns the merged record
func (r *workoutRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Workout, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var workout models.Workout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the row so concurrent partial updates apply one after another
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, userID).First(&workout).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&workout).Omit(clause.Associations).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&workout).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update workout: %w", translate(err))
	}
	return &workout, nil
}

// Delete deletes a workout by its ID
func (r *workoutRepository) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Workout{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete workout: %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every workout of a user
func (r *workoutRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Workout{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear workouts: %w", translate(result.Error))
	}
	return result.RowsAffected, nil
}
