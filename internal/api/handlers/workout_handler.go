package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	apperrors "github.com/welldanyogia/webrana-resource-api/internal/errors"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
	"github.com/welldanyogia/webrana-resource-api/internal/models"
	"github.com/welldanyogia/webrana-resource-api/internal/repository"
	"github.com/welldanyogia/webrana-resource-api/internal/validator"
)

// MaxTitleLength is the longest workout title, in runes
const MaxTitleLength = 255

// WorkoutHandler handles workout HTTP requests
type WorkoutHandler struct {
	repo         repository.WorkoutRepository
	events       events.Publisher
	deleteStatus int
}

// NewWorkoutHandler creates a new WorkoutHandler. deleteStatus is the status
// sent after a successful delete.
func NewWorkoutHandler(repo repository.WorkoutRepository, publisher events.Publisher, deleteStatus int) *WorkoutHandler {
	if deleteStatus == 0 {
		deleteStatus = http.StatusOK
	}
	return &WorkoutHandler{repo: repo, events: publisher, deleteStatus: deleteStatus}
}

// WorkoutRequest is the body of create and update. Absent fields are nil;
// create requires a title, update changes only what is present.
type WorkoutRequest struct {
	Title *string  `json:"title"`
	Reps  *int     `json:"reps"`
	Load  *float64 `json:"load"`
}

// validate checks the present fields and returns them as store columns
func (r WorkoutRequest) validate() (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if r.Title != nil {
		title, err := validator.SanitizeString(*r.Title, MaxTitleLength)
		if err != nil {
			return nil, apperrors.Invalid("title: %v", err)
		}
		if title == "" {
			return nil, apperrors.Invalid("title is required")
		}
		fields["title"] = title
	}
	if r.Reps != nil {
		if *r.Reps < 0 {
			return nil, apperrors.Invalid("reps must not be negative")
		}
		fields["reps"] = *r.Reps
	}
	if r.Load != nil {
		if *r.Load < 0 {
			return nil, apperrors.Invalid("load must not be negative")
		}
		fields["load"] = *r.Load
	}
	return fields, nil
}

// List handles GET /api/workouts
func (h *WorkoutHandler) List(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	workouts, err := h.repo.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}

	return response.JSON(c, http.StatusOK, workouts)
}

// Get handles GET /api/workouts/:id
func (h *WorkoutHandler) Get(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	workout, err := h.repo.GetByID(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "workout not found")
		}
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, workout)
}

// Create handles POST /api/workouts
func (h *WorkoutHandler) Create(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req WorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return response.BadRequest(c, "title is required")
	}
	fields, err := req.validate()
	if err != nil {
		return response.Error(c, err)
	}

	workout := &models.Workout{UserID: userID, Title: fields["title"].(string)}
	if req.Reps != nil {
		workout.Reps = *req.Reps
	}
	if req.Load != nil {
		workout.Load = *req.Load
	}
	if err := h.repo.Create(c.Request().Context(), workout); err != nil {
		return response.Error(c, err)
	}

	publish(h.events, userID, events.Event{Type: events.TypeCreated, Resource: events.ResourceWorkout, ID: workout.ID, Data: workout})
	return response.Created(c, workout)
}

// Update handles PATCH /api/workouts/:id
func (h *WorkoutHandler) Update(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req WorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	fields, err := req.validate()
	if err != nil {
		return response.Error(c, err)
	}

	workout, err := h.repo.Update(c.Request().Context(), userID, c.Param("id"), fields)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "workout not found")
		}
		return response.Error(c, err)
	}

	publish(h.events, userID, events.Event{Type: events.TypeUpdated, Resource: events.ResourceWorkout, ID: workout.ID, Data: workout})
	return response.JSON(c, http.StatusOK, workout)
}

// Delete handles DELETE /api/workouts/:id
func (h *WorkoutHandler) Delete(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	id := c.Param("id")
	if err := h.repo.Delete(c.Request().Context(), userID, id); err != nil {
		if apperrors.IsNotFound(err) {
			return response.NotFound(c, "workout not found")
		}
		return response.Error(c, err)
	}

	publish(h.events, userID, events.Event{Type: events.TypeDeleted, Resource: events.ResourceWorkout, ID: id})
	return response.Status(c, h.deleteStatus)
}
