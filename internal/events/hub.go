// Package events pushes resource change notifications to connected clients
// over websockets.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Event types
const (
	TypeCreated = "created"
	TypeUpdated = "updated"
	TypeDeleted = "deleted"
	TypeCleared = "cleared"
)

// Resource names
const (
	ResourceFavorite = "favorite"
	ResourceWorkout  = "workout"
)

// Event describes a change to one of a user's resources
type Event struct {
	Type     string      `json:"type"`
	Resource string      `json:"resource"`
	ID       string      `json:"id,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// Publisher is the write side of the hub used by handlers.
type Publisher interface {
	Publish(userID string, event Event)
}

// Hub maintains the set of active clients per user and fans events out to them
type Hub struct {
	// Connected clients: userID -> set of clients
	clients map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	// Resource filters
	subscribe   chan *subscriptionRequest
	unsubscribe chan *subscriptionRequest

	broadcast chan *broadcastMessage

	mu sync.RWMutex

	done     chan struct{}
	stopOnce sync.Once

	logger *slog.Logger
}

type subscriptionRequest struct {
	client   *Client
	resource string
}

type broadcastMessage struct {
	userID   string
	resource string
	message  []byte
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *subscriptionRequest),
		unsubscribe: make(chan *subscriptionRequest),
		broadcast:   make(chan *broadcastMessage, 256),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run starts the hub's main loop and returns when ctx is done or Stop is called
func (h *Hub) Run(ctx context.Context) {
	defer h.Stop()
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mu.Unlock()
			h.debug("client registered", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.userID]; ok && set[client] {
				delete(set, client)
				close(client.send)
				if len(set) == 0 {
					delete(h.clients, client.userID)
				}
			}
			h.mu.Unlock()
			h.debug("client unregistered", client.userID)

		case req := <-h.subscribe:
			h.mu.Lock()
			req.client.resources[req.resource] = true
			h.mu.Unlock()

		case req := <-h.unsubscribe:
			h.mu.Lock()
			delete(req.client.resources, req.resource)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients[msg.userID] {
				if !client.wants(msg.resource) {
					continue
				}
				select {
				case client.send <- msg.message:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, set := range h.clients {
		for client := range set {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Subscribe limits a client to the given resource. A client with no
// subscriptions receives every resource.
func (h *Hub) Subscribe(client *Client, resource string) {
	select {
	case h.subscribe <- &subscriptionRequest{client: client, resource: resource}:
	case <-h.done:
	}
}

// Unsubscribe removes a resource filter from a client
func (h *Hub) Unsubscribe(client *Client, resource string) {
	select {
	case h.unsubscribe <- &subscriptionRequest{client: client, resource: resource}:
	case <-h.done:
	}
}

// Publish queues event for the clients of userID. It never blocks; when the
// queue is full the event is dropped.
func (h *Hub) Publish(userID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal event", slog.Any("error", err))
		}
		return
	}

	select {
	case h.broadcast <- &broadcastMessage{userID: userID, resource: event.Resource, message: data}:
	default:
		if h.logger != nil {
			h.logger.Warn("event queue full, dropping event",
				slog.String("resource", event.Resource),
				slog.String("type", event.Type))
		}
	}
}

// ClientCount returns the number of connected clients of userID
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) debug(msg, userID string) {
	if h.logger != nil {
		h.logger.Debug(msg, slog.String("user_id", userID))
	}
}
