package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
)

// DefaultAirports is the catalog loaded into an empty database.
func DefaultAirports() []models.Airport {
	return []models.Airport{
		{ID: "GKA", Name: "Goroka Airport", City: "Goroka", Country: "Papua New Guinea", ICAO: "AYGA", Latitude: -6.08169, Longitude: 145.391998, Altitude: 5282, Timezone: "Pacific/Port_Moresby"},
		{ID: "HEL", Name: "Helsinki Vantaa Airport", City: "Helsinki", Country: "Finland", ICAO: "EFHK", Latitude: 60.3172, Longitude: 24.963301, Altitude: 179, Timezone: "Europe/Helsinki"},
		{ID: "JFK", Name: "John F Kennedy International Airport", City: "New York", Country: "United States", ICAO: "KJFK", Latitude: 40.639801, Longitude: -73.7789, Altitude: 13, Timezone: "America/New_York"},
		{ID: "KIX", Name: "Kansai International Airport", City: "Osaka", Country: "Japan", ICAO: "RJBB", Latitude: 34.427299, Longitude: 135.244003, Altitude: 26, Timezone: "Asia/Tokyo"},
		{ID: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", ICAO: "KLAX", Latitude: 33.942501, Longitude: -118.407997, Altitude: 125, Timezone: "America/Los_Angeles"},
		{ID: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.461941, Altitude: 83, Timezone: "Europe/London"},
		{ID: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", ICAO: "RJAA", Latitude: 35.764702, Longitude: 140.386002, Altitude: 141, Timezone: "Asia/Tokyo"},
		{ID: "SYD", Name: "Sydney Kingsford Smith International Airport", City: "Sydney", Country: "Australia", ICAO: "YSSY", Latitude: -33.9461, Longitude: 151.177002, Altitude: 21, Timezone: "Australia/Sydney"},
		{ID: "YBR", Name: "Brandon Municipal Airport", City: "Brandon", Country: "Canada", ICAO: "CYBR", Latitude: 49.91, Longitude: -99.951897, Altitude: 1343, Timezone: "America/Winnipeg"},
		{ID: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", ICAO: "CYVR", Latitude: 49.193901, Longitude: -123.183998, Altitude: 14, Timezone: "America/Vancouver"},
		{ID: "YWG", Name: "Winnipeg / James Armstrong Richardson International Airport", City: "Winnipeg", Country: "Canada", ICAO: "CYWG", Latitude: 49.91, Longitude: -97.239899, Altitude: 783, Timezone: "America/Winnipeg"},
		{ID: "YYZ", Name: "Lester B. Pearson International Airport", City: "Toronto", Country: "Canada", ICAO: "CYYZ", Latitude: 43.677200, Longitude: -79.630600, Altitude: 569, Timezone: "America/Toronto"},
	}
}

// SeedAirports loads DefaultAirports, skipping codes that already exist.
func SeedAirports(ctx context.Context, repo repository.AirportRepository) error {
	airports := DefaultAirports()
	if err := repo.Seed(ctx, airports); err != nil {
		return fmt.Errorf("failed to seed airport catalog: %w", err)
	}
	slog.Info("Airport catalog seeded", slog.Int("airports", len(airports)))
	return nil
}
