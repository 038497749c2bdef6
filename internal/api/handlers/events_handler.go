package handlers

import (
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-resource-api/internal/events"
)

// EventsHandler upgrades authenticated requests to the change feed
type EventsHandler struct {
	hub      *events.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(hub *events.Hub, upgrader websocket.Upgrader, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, upgrader: upgrader, logger: logger}
}

// Stream handles GET /api/events
func (h *EventsHandler) Stream(c echo.Context) error {
	userID, ok := ownerID(c)
	if !ok {
		return unauthenticated(c)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the error response
		if h.logger != nil {
			h.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		}
		return nil
	}

	client := events.NewClient(h.hub, conn, userID, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	return nil
}
