// Package websocket carries the in-memory live-tracking fan-out. The hub is
// a best-effort presentation layer over the durable telemetry store: no
// buffering across reconnects, no delivery guarantees across restarts.
package websocket

import (
	"sync"
	"sync/atomic"

	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

// Subscriber is one listener on a trip room. Events arrive on Events();
// Close detaches the subscriber and closes the channel.
type Subscriber struct {
	tripID string
	events chan models.PositionUpdate
	hub    *Hub
	once   sync.Once
}

// Events returns the position-update stream for this subscriber
func (s *Subscriber) Events() <-chan models.PositionUpdate {
	return s.events
}

// Close detaches the subscriber from its room and closes the event channel
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.events)
	})
}

// Hub manages per-trip subscriber rooms
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Subscriber]struct{}
	buffer  int
	dropped uint64
}

// NewHub creates a hub with the given per-subscriber queue size
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		rooms:  make(map[string]map[*Subscriber]struct{}),
		buffer: buffer,
	}
}

// Subscribe joins the room for tripID
func (h *Hub) Subscribe(tripID string) *Subscriber {
	sub := &Subscriber{
		tripID: tripID,
		events: make(chan models.PositionUpdate, h.buffer),
		hub:    h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[tripID]
	if !ok {
		room = make(map[*Subscriber]struct{})
		h.rooms[tripID] = room
	}
	room[sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sub.tripID]
	if !ok {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, sub.tripID)
	}
}

// Publish fans out an update to every subscriber in the trip's room. The
// send is non-blocking: a subscriber whose queue is full loses this update
// so that slow consumers never stall ingestion.
func (h *Hub) Publish(tripID string, update models.PositionUpdate) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	room, ok := h.rooms[tripID]
	if !ok {
		return
	}

	for sub := range room {
		select {
		case sub.events <- update:
		default:
			atomic.AddUint64(&h.dropped, 1)
			logger.Debug("Dropped position update for slow subscriber",
				logger.String("trip_id", tripID))
		}
	}
}

// RoomSize returns the number of subscribers in a trip's room
func (h *Hub) RoomSize(tripID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[tripID])
}

// Dropped returns the total number of updates dropped on full queues
func (h *Hub) Dropped() uint64 {
	return atomic.LoadUint64(&h.dropped)
}
