package events

import (
	"sync"
	"time"
)

// Event is a recorded fact about a composition draft or confirmation.
type Event struct {
	Type      string
	StreamID  string
	Data      any
	Timestamp time.Time
	Version   int
}

// InMemoryEventStore keeps per-stream event logs so a confirmation session
// can be audited or replayed.
type InMemoryEventStore struct {
	mutex   sync.RWMutex
	streams map[string][]Event
	all     []Event
}

// NewInMemoryEventStore creates an empty event store
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]Event),
	}
}

// Append records an event on a stream and returns the stored event with its
// assigned version.
func (s *InMemoryEventStore) Append(streamID, eventType string, data any) Event {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event := Event{
		Type:      eventType,
		StreamID:  streamID,
		Data:      data,
		Timestamp: time.Now(),
		Version:   len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], event)
	s.all = append(s.all, event)
	return event
}

// Read returns all events recorded on a stream, oldest first
func (s *InMemoryEventStore) Read(streamID string) []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.streams[streamID]))
	copy(events, s.streams[streamID])
	return events
}

// All returns every recorded event across streams, oldest first
func (s *InMemoryEventStore) All() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.all))
	copy(events, s.all)
	return events
}
