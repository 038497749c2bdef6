package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/internal/validator"
)

// MaxNoteLength is the longest note accepted on a favorite, in runes
const MaxNoteLength = 1000

// FavoriteHandler handles favorite airport HTTP requests
type FavoriteHandler struct {
	repo         repository.FavoriteRepository
	airports     repository.AirportRepository
	events       events.Publisher
	deleteStatus int
}

// NewFavoriteHandler creates a new FavoriteHandler. deleteStatus is the
// status sent after a successful delete.
func NewFavoriteHandler(repo repository.FavoriteRepository, airports repository.AirportRepository, publisher events.Publisher, deleteStatus int) *FavoriteHandler {
	if deleteStatus == 0 {
		deleteStatus = http.StatusNoContent
	}
	return &FavoriteHandler{repo: repo, airports: airports, events: publisher, deleteStatus: deleteStatus}
}

// CreateFavoriteRequest represents the request body for creating a favorite
type CreateFavoriteRequest struct {
	AirportID string `json:"airport_id"`
	Note      string `json:"note"`
}

// UpdateFavoriteRequest represents the request body for updating a favorite.
// Absent fields are left unchanged.
type UpdateFavoriteRequest struct {
	AirportID *string `json:"airport_id"`
	Note      *string `json:"note"`
}

func favoriteResource(f *models.Favorite) response.Resource {
	return response.Resource{ID: f.ID, Type: "favorite", Attributes: f.Attributes()}
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	favorites, err := h.repo.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	resources := make([]response.Resource, 0, len(favorites))
	for i := range favorites {
		resources = append(resources, favoriteResource(&favorites[i]))
	}
	return response.Many(c, http.StatusOK, resources)
}

// Get handles GET /favorites/:id
func (h *FavoriteHandler) Get(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	favorite, err := h.repo.GetByID(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "favorite not found")
		}
		return response.Error(c, err)
	}

	return response.One(c, http.StatusOK, favoriteResource(favorite))
}

// Create handles POST /favorites
func (h *FavoriteHandler) Create(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	note, err := validator.SanitizeString(req.Note, MaxNoteLength)
	if err != nil {
		return response.Error(c, apperrors.Invalid("note: %v", err))
	}

	code, err := h.resolveAirport(c, req.AirportID)
	if err != nil {
		return response.Error(c, err)
	}

	favorite := &models.Favorite{
		UserID:    userID,
		AirportID: code,
		Note:      note,
	}
	if err := h.repo.Create(c.Request().Context(), favorite); err != nil {
		return response.Error(c, err)
	}

	res := favoriteResource(favorite)
	publish(h.events, userID, events.Event{Type: events.TypeCreated, Resource: events.ResourceFavorite, ID: favorite.ID, Data: res})
	return response.One(c, http.StatusCreated, res)
}

// Update handles PUT and PATCH /favorites/:id
func (h *FavoriteHandler) Update(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	fields := make(map[string]interface{})
	if req.Note != nil {
		note, err := validator.SanitizeString(*req.Note, MaxNoteLength)
		if err != nil {
			return response.Error(c, apperrors.Invalid("note: %v", err))
		}
		fields["note"] = note
	}
	if req.AirportID != nil {
		code, err := h.resolveAirport(c, *req.AirportID)
		if err != nil {
			return response.Error(c, err)
		}
		fields["airport_id"] = code
	}

	favorite, err := h.repo.Update(c.Request().Context(), userID, c.Param("id"), fields)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "favorite not found")
		}
		return response.Error(c, err)
	}

	res := favoriteResource(favorite)
	publish(h.events, userID, events.Event{Type: events.TypeUpdated, Resource: events.ResourceFavorite, ID: favorite.ID, Data: res})
	return response.One(c, http.StatusOK, res)
}

// Delete handles DELETE /favorites/:id
func (h *FavoriteHandler) Delete(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	id := c.Param("id")
	if err := h.repo.Delete(c.Request().Context(), userID, id); err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "favorite not found")
		}
		return response.Error(c, err)
	}

	publish(h.events, userID, events.Event{Type: events.TypeDeleted, Resource: events.ResourceFavorite, ID: id})
	return response.Status(c, h.deleteStatus)
}

// ClearAll handles DELETE /favorites/clear_all
func (h *FavoriteHandler) ClearAll(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	if _, err := h.repo.DeleteAll(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	publish(h.events, userID, events.Event{Type: events.TypeCleared, Resource: events.ResourceFavorite})
	return response.Status(c, http.StatusNoContent)
}

// resolveAirport validates code and checks it names a catalog airport
func (h *FavoriteHandler) resolveAirport(c echo.Context, raw string) (string, error) {
	code, err := validator.NormalizeAirportCode(raw)
	if err != nil {
		return "", apperrors.Invalid("airport_id: %v", err)
	}
	if _, err := h.airports.GetByID(c.Request().Context(), code); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.Invalid("airport_id: unknown airport %s", code)
		}
		return "", err
	}
	return code, nil
}
