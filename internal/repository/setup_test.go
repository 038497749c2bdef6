package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a migrated in-memory SQLite database holding two
// airports and two accounts.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Airport{}, &models.Favorite{}, &models.Workout{}))

	require.NoError(t, db.Create(&[]models.Airport{
		{ID: "YBR", Name: "Brandon Municipal Airport", City: "Brandon", Country: "Canada", ICAO: "CYBR"},
		{ID: "HEL", Name: "Helsinki Vantaa Airport", City: "Helsinki", Country: "Finland", ICAO: "EFHK"},
	}).Error)
	require.NoError(t, db.Create(&[]models.User{
		{ID: ownerID, Email: "mattiv@matti.fi", PasswordHash: "x"},
		{ID: strangerID, Email: "other@matti.fi", PasswordHash: "x"},
	}).Error)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

const (
	ownerID    = "11111111-1111-1111-1111-111111111111"
	strangerID = "22222222-2222-2222-2222-222222222222"
)

var bg = context.Background()
