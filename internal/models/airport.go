package models

import "math"

// Airport is an entry of the read-only airport catalog. The primary key is
// the IATA code.
type Airport struct {
	ID        string  `gorm:"primaryKey;size:3" json:"id"`
	Name      string  `gorm:"not null;size:255" json:"name"`
	City      string  `gorm:"size:255" json:"city"`
	Country   string  `gorm:"size:255" json:"country"`
	ICAO      string  `gorm:"size:4" json:"icao"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  int     `json:"altitude"`
	Timezone  string  `gorm:"size:64" json:"timezone"`
}

// TableName returns the table name for Airport
func (Airport) TableName() string {
	return "airports"
}

// AirportAttributes is the attribute set exposed for an airport, including
// the IATA code as its own field.
type AirportAttributes struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  int     `json:"altitude"`
	Timezone  string  `json:"timezone"`
}

// Attributes returns the public attribute set of the airport.
func (a Airport) Attributes() AirportAttributes {
	return AirportAttributes{
		ID:        a.ID,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		IATA:      a.ID,
		ICAO:      a.ICAO,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Altitude:  a.Altitude,
		Timezone:  a.Timezone,
	}
}

const earthRadiusKm = 6371.0088

// DistanceKm returns the great-circle distance to b in kilometres.
func (a Airport) DistanceKm(b Airport) float64 {
	lat1, lat2 := radians(a.Latitude), radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
