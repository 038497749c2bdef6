package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
)

func TestAirportRepository_GetByID_CaseInsensitive(t *testing.T) {
	repo := NewAirportRepository(openTestDB(t), 0)

	airport, err := repo.GetByID(bg, " ybr ")

	require.NoError(t, err)
	assert.Equal(t, "Brandon Municipal Airport", airport.Name)
}

func TestAirportRepository_GetByID_NotFound(t *testing.T) {
	repo := NewAirportRepository(openTestDB(t), 0)

	airport, err := repo.GetByID(bg, "ZZZ")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, airport)
}

func TestAirportRepository_ListOrderedByCode(t *testing.T) {
	repo := NewAirportRepository(openTestDB(t), 0)

	airports, err := repo.List(bg)

	require.NoError(t, err)
	require.Len(t, airports, 2)
	assert.Equal(t, "HEL", airports[0].ID)
	assert.Equal(t, "YBR", airports[1].ID)
}

func TestAirportRepository_SeedSkipsExisting(t *testing.T) {
	repo := NewAirportRepository(openTestDB(t), 0)

	err := repo.Seed(bg, []models.Airport{
		{ID: "YBR", Name: "Renamed"},
		{ID: "LHR", Name: "London Heathrow Airport"},
	})
	require.NoError(t, err)

	ybr, err := repo.GetByID(bg, "YBR")
	require.NoError(t, err)
	assert.Equal(t, "Brandon Municipal Airport", ybr.Name)

	airports, err := repo.List(bg)
	require.NoError(t, err)
	assert.Len(t, airports, 3)
}

func TestAirportRepository_SeedEmpty(t *testing.T) {
	repo := NewAirportRepository(openTestDB(t), 0)

	assert.NoError(t, repo.Seed(bg, nil))
}
