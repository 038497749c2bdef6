package mocks

import (
	"sync"

	"github.com/welldanyogia/webrana-resource-api/internal/events"
)

// PublishedEvent records an event sent through the mock publisher
type PublishedEvent struct {
	UserID string
	Event  events.Event
}

// MockPublisher implements events.Publisher and records what it receives
type MockPublisher struct {
	mu        sync.Mutex
	published []PublishedEvent
}

// NewMockPublisher creates a new MockPublisher instance
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{published: make([]PublishedEvent, 0)}
}

// Publish records the event
func (m *MockPublisher) Publish(userID string, event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, PublishedEvent{UserID: userID, Event: event})
}

// Published returns all recorded events
func (m *MockPublisher) Published() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.published))
	copy(out, m.published)
	return out
}
