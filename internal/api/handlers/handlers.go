// Package handlers binds HTTP requests to the account, airport, favorite
// and workout stores.
package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/api/middleware"
	"github.com/welldanyogia/webrana-resource-api/internal/api/response"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
)

// ownerID returns the id of the account stored by BearerAuth
func ownerID(c echo.Context) (string, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return "", false
	}
	return user.ID, true
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, "authentication required")
}

// publish forwards to p when one is configured.
func publish(p events.Publisher, userID string, event events.Event) {
	if p != nil {
		p.Publish(userID, event)
	}
}
