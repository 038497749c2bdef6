package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
)

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// Create creates a new account
func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID retrieves an account by its ID
func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// GetByEmail retrieves an account by its email
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockAirportRepository implements repository.AirportRepository
type MockAirportRepository struct {
	mock.Mock
}

// GetByID retrieves an airport by its IATA code
func (m *MockAirportRepository) GetByID(ctx context.Context, code string) (*models.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Airport), args.Error(1)
}

// List retrieves the whole catalog
func (m *MockAirportRepository) List(ctx context.Context) ([]models.Airport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airport), args.Error(1)
}

// Seed inserts missing airports
func (m *MockAirportRepository) Seed(ctx context.Context, airports []models.Airport) error {
	args := m.Called(ctx, airports)
	return args.Error(0)
}

// MockFavoriteRepository implements repository.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

// Create creates a new favorite
func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

// GetByID retrieves a favorite of userID
func (m *MockFavoriteRepository) GetByID(ctx context.Context, userID, id string) (*models.Favorite, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

// List retrieves the favorites of userID
func (m *MockFavoriteRepository) List(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

// Update applies fields to a favorite of userID
func (m *MockFavoriteRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Favorite, error) {
	args := m.Called(ctx, userID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

// Delete deletes a favorite of userID
func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// DeleteAll deletes every favorite of userID
func (m *MockFavoriteRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWorkoutRepository implements repository.WorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

// Create creates a new workout
func (m *MockWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

// GetByID retrieves a workout of userID
func (m *MockWorkoutRepository) GetByID(ctx context.Context, userID, id string) (*models.Workout, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

// List retrieves the workouts of userID
func (m *MockWorkoutRepository) List(ctx context.Context, userID string) ([]models.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

// Update applies fields to a workout of userID
func (m *MockWorkoutRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (*models.Workout, error) {
	args := m.Called(ctx, userID, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workout), args.Error(1)
}

// Delete deletes a workout of userID
func (m *MockWorkoutRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// DeleteAll deletes every workout of userID
func (m *MockWorkoutRepository) DeleteAll(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
