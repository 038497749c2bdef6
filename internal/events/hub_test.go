package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/welldanyogia/webrana-resource-api/internal/logger"
)

// startHub runs a hub for the duration of the test
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

// dial serves websocket connections for userID and returns a connected client
func dial(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()
	upgrader := NewSecureUpgrader(nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, userID, nil)
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestHub_PublishReachesOwnerOnly(t *testing.T) {
	hub := startHub(t)
	owner := dial(t, hub, "user-1")
	other := dial(t, hub, "user-2")

	require.Eventually(t, func() bool {
		return hub.ClientCount("user-1") == 1 && hub.ClientCount("user-2") == 1
	}, time.Second, 5*time.Millisecond)

	hub.Publish("user-1", Event{Type: TypeCreated, Resource: ResourceWorkout, ID: "w1"})

	event := readEvent(t, owner)
	assert.Equal(t, TypeCreated, event.Type)
	assert.Equal(t, ResourceWorkout, event.Resource)
	assert.Equal(t, "w1", event.ID)

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_SubscribeFiltersResources(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub, "user-1")
	require.Eventually(t, func() bool { return hub.ClientCount("user-1") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(ControlMessage{Type: MessageTypeSubscribe, Resource: ResourceFavorite}))
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		for c := range hub.clients["user-1"] {
			return c.resources[ResourceFavorite]
		}
		return false
	}, time.Second, 5*time.Millisecond)

	hub.Publish("user-1", Event{Type: TypeDeleted, Resource: ResourceWorkout, ID: "w1"})
	hub.Publish("user-1", Event{Type: TypeDeleted, Resource: ResourceFavorite, ID: "f1"})

	event := readEvent(t, conn)
	assert.Equal(t, ResourceFavorite, event.Resource)
	assert.Equal(t, "f1", event.ID)
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	hub := startHub(t)
	conn := dial(t, hub, "user-1")
	require.Eventually(t, func() bool { return hub.ClientCount("user-1") == 1 }, time.Second, 5*time.Millisecond)

	conn.Close()

	assert.Eventually(t, func() bool { return hub.ClientCount("user-1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	var buf bytes.Buffer
	hub := NewHub(slog.New(slog.NewJSONHandler(&buf, nil)))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish("user-1", Event{Type: TypeCreated, Resource: ResourceWorkout})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
	assert.Contains(t, buf.String(), "event queue full")
}

func TestHub_StopReleasesCallers(t *testing.T) {
	hub := NewHub(nil)
	finished := make(chan struct{})
	go func() {
		hub.Run(context.Background())
		close(finished)
	}()

	hub.Stop()
	hub.Stop()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	// Register after shutdown must not block
	hub.Register(NewClient(hub, nil, "user-1", nil))
	assert.Equal(t, 0, hub.ClientCount("user-1"))
}

func TestClient_HandleMessage_Errors(t *testing.T) {
	hub := NewHub(nil)
	client := NewClient(hub, nil, "user-1", nil)

	client.handleMessage([]byte("not json"))
	client.handleMessage([]byte(`{"type":"subscribe","resource":"mailbox"}`))
	client.handleMessage([]byte(`{"type":"dance"}`))

	expected := []string{"invalid message format", "resource must be favorite or workout", "unknown message type"}
	for _, want := range expected {
		var msg ControlMessage
		require.NoError(t, json.Unmarshal(<-client.send, &msg))
		assert.Equal(t, MessageTypeError, msg.Type)
		assert.Equal(t, want, msg.Error)
	}
}

func TestClient_WantsAllWithoutSubscriptions(t *testing.T) {
	client := NewClient(NewHub(nil), nil, "user-1", nil)
	assert.True(t, client.wants(ResourceFavorite))
	assert.True(t, client.wants(ResourceWorkout))

	client.resources[ResourceWorkout] = true
	assert.False(t, client.wants(ResourceFavorite))
	assert.True(t, client.wants(ResourceWorkout))
}

func TestNewSecureUpgrader_Origins(t *testing.T) {
	var buf bytes.Buffer
	security := logger.NewSecurityLoggerWithHandler(slog.NewJSONHandler(&buf, nil))
	upgrader := NewSecureUpgrader([]string{"http://localhost:3000", "http://example.com"}, security)

	tests := []struct {
		origin   string
		expected bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://example.com", true},
		{"http://malicious.com", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.expected, upgrader.CheckOrigin(req), tt.origin)
	}
	assert.Contains(t, buf.String(), "invalid_origin")
	assert.Contains(t, buf.String(), "http://malicious.com")
}

func TestNewSecureUpgrader_DefaultOrigin(t *testing.T) {
	upgrader := NewSecureUpgrader(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	assert.True(t, upgrader.CheckOrigin(req))
}
