package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Password satisfies the default password policy and is used by UserBuilder.
const Password = "R3g5T7#gh"

// UserBuilder creates test User instances with fluent API
type UserBuilder struct {
	user     models.User
	password string
}

// NewUserBuilder creates a new UserBuilder with sensible defaults
func NewUserBuilder() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		user: models.User{
			ID:        uuid.NewString(),
			Email:     "mattiv@matti.fi",
			CreatedAt: now,
			UpdatedAt: now,
		},
		password: Password,
	}
}

// WithID sets the user ID
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.user.ID = id
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword sets the plaintext password hashed by Build
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build returns the constructed User with a bcrypt hash of the password
// at minimum cost.
func (b *UserBuilder) Build() *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	user := b.user
	user.PasswordHash = string(hash)
	return &user
}

// AirportBuilder creates test Airport instances with fluent API
type AirportBuilder struct {
	airport models.Airport
}

// NewAirportBuilder starts from Brandon Municipal Airport
func NewAirportBuilder() *AirportBuilder {
	return &AirportBuilder{
		airport: models.Airport{
			ID:        "YBR",
			Name:      "Brandon Municipal Airport",
			City:      "Brandon",
			Country:   "Canada",
			ICAO:      "CYBR",
			Latitude:  49.91,
			Longitude: -99.951897,
			Altitude:  1343,
			Timezone:  "America/Winnipeg",
		},
	}
}

// WithCode sets the IATA code
func (b *AirportBuilder) WithCode(code string) *AirportBuilder {
	b.airport.ID = code
	return b
}

// WithName sets the airport name
func (b *AirportBuilder) WithName(name string) *AirportBuilder {
	b.airport.Name = name
	return b
}

// WithPosition sets the coordinates
func (b *AirportBuilder) WithPosition(lat, lon float64) *AirportBuilder {
	b.airport.Latitude = lat
	b.airport.Longitude = lon
	return b
}

// Build returns the constructed Airport
func (b *AirportBuilder) Build() *models.Airport {
	a := b.airport
	return &a
}

// BuildValue returns the constructed Airport as a value (not pointer)
func (b *AirportBuilder) BuildValue() models.Airport {
	return b.airport
}

// FavoriteBuilder creates test Favorite instances with fluent API
type FavoriteBuilder struct {
	favorite models.Favorite
}

// NewFavoriteBuilder creates a new FavoriteBuilder with sensible defaults.
// The ID is left empty so the store assigns one.
func NewFavoriteBuilder() *FavoriteBuilder {
	return &FavoriteBuilder{
		favorite: models.Favorite{
			AirportID: "YBR",
			Note:      "Going to Canada",
		},
	}
}

// WithOwner sets the owning user
func (b *FavoriteBuilder) WithOwner(userID string) *FavoriteBuilder {
	b.favorite.UserID = userID
	return b
}

// WithAirport sets the airport code
func (b *FavoriteBuilder) WithAirport(code string) *FavoriteBuilder {
	b.favorite.AirportID = code
	return b
}

// WithNote sets the note
func (b *FavoriteBuilder) WithNote(note string) *FavoriteBuilder {
	b.favorite.Note = note
	return b
}

// Build returns the constructed Favorite
func (b *FavoriteBuilder) Build() *models.Favorite {
	f := b.favorite
	return &f
}

// WorkoutBuilder creates test Workout instances with fluent API
type WorkoutBuilder struct {
	workout models.Workout
}

// NewWorkoutBuilder creates a new WorkoutBuilder with sensible defaults.
// The ID is left empty so the store assigns one.
func NewWorkoutBuilder() *WorkoutBuilder {
	return &WorkoutBuilder{
		workout: models.Workout{
			Title: "test backend",
			Reps:  11,
			Load:  101,
		},
	}
}

// WithOwner sets the owning user
func (b *WorkoutBuilder) WithOwner(userID string) *WorkoutBuilder {
	b.workout.UserID = userID
	return b
}

// WithTitle sets the title
func (b *WorkoutBuilder) WithTitle(title string) *WorkoutBuilder {
	b.workout.Title = title
	return b
}

// WithReps sets the repetitions
func (b *WorkoutBuilder) WithReps(reps int) *WorkoutBuilder {
	b.workout.Reps = reps
	return b
}

// WithLoad sets the load
func (b *WorkoutBuilder) WithLoad(load float64) *WorkoutBuilder {
	b.workout.Load = load
	return b
}

// Build returns the constructed Workout
func (b *WorkoutBuilder) Build() *models.Workout {
	w := b.workout
	return &w
}

// InitialWorkouts mirrors the two entries every workout suite starts from
func InitialWorkouts(userID string) []*models.Workout {
	return []*models.Workout{
		NewWorkoutBuilder().WithOwner(userID).WithTitle("test backend").WithReps(11).WithLoad(101).Build(),
		NewWorkoutBuilder().WithOwner(userID).WithTitle("test backend 2").WithReps(12).WithLoad(102).Build(),
	}
}
