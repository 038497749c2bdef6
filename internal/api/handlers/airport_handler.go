package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/internal/validator"
)

// Conversion factors from kilometres
const (
	kmPerMile         = 1.609344
	kmPerNauticalMile = 1.852
)

// AirportHandler serves the read-only airport catalog
type AirportHandler struct {
	repo repository.AirportRepository
}

// NewAirportHandler creates a new AirportHandler
func NewAirportHandler(repo repository.AirportRepository) *AirportHandler {
	return &AirportHandler{repo: repo}
}

// DistanceRequest represents the request body for a distance lookup
type DistanceRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DistanceAttributes is the attribute set of a distance resource
type DistanceAttributes struct {
	From          models.AirportAttributes `json:"from_airport"`
	To            models.AirportAttributes `json:"to_airport"`
	Kilometers    float64                  `json:"kilometers"`
	Miles         float64                  `json:"miles"`
	NauticalMiles float64                  `json:"nautical_miles"`
}

func airportResource(a *models.Airport) response.Resource {
	return response.Resource{ID: a.ID, Type: "airport", Attributes: a.Attributes()}
}

// List handles GET /airports
func (h *AirportHandler) List(c echo.Context) error {
	airports, err := h.repo.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	resources := make([]response.Resource, 0, len(airports))
	for i := range airports {
		resources = append(resources, airportResource(&airports[i]))
	}
	return response.Many(c, http.StatusOK, resources)
}

// Get handles GET /airports/:id
func (h *AirportHandler) Get(c echo.Context) error {
	airport, err := h.lookup(c, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.One(c, http.StatusOK, airportResource(airport))
}

// Distance handles POST /airports/distance
func (h *AirportHandler) Distance(c echo.Context) error {
	var req DistanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	from, err := h.lookup(c, req.From)
	if err != nil {
		return response.Error(c, err)
	}
	to, err := h.lookup(c, req.To)
	if err != nil {
		return response.Error(c, err)
	}

	km := from.DistanceKm(*to)
	return response.One(c, http.StatusOK, response.Resource{
		ID:   from.ID + "-" + to.ID,
		Type: "airport_distance",
		Attributes: DistanceAttributes{
			From:          from.Attributes(),
			To:            to.Attributes(),
			Kilometers:    km,
			Miles:         km / kmPerMile,
			NauticalMiles: km / kmPerNauticalMile,
		},
	})
}

func (h *AirportHandler) lookup(c echo.Context, raw string) (*models.Airport, error) {
	code, err := validator.NormalizeAirportCode(raw)
	if err != nil {
		return nil, apperrors.Invalid("airport code %q: %v", raw, err)
	}
	airport, err := h.repo.GetByID(c.Request().Context(), code)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewAppError(err, "airport "+code+" not found", apperrors.CodeNotFound)
		}
		return nil, err
	}
	return airport, nil
}
