package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openMockPostgres returns a GORM handle speaking the postgres dialect to sqlmock
func openMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db, DriverName: "postgres"}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock
}

func TestFavoriteUpdate_LocksRowForUpdate(t *testing.T) {
	db, mock := openMockPostgres(t)
	repo := NewFavoriteRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE id = \$1 AND user_id = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Update(bg, ownerID, "fav-1", map[string]interface{}{"note": "x"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutUpdate_LocksRowForUpdate(t *testing.T) {
	db, mock := openMockPostgres(t)
	repo := NewWorkoutRepository(db, time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "workouts" WHERE id = \$1 AND user_id = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Update(bg, ownerID, "w1", map[string]interface{}{"reps": 30})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
