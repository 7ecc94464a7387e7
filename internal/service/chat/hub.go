package chat

import (
	"sync"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

// Hub fans new messages out to per-room subscribers. Subscribers that fall
// behind have messages dropped rather than blocking the publisher; the client
// re-fetches the full list on reconnect.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[chan models.ChatMessage]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[chan models.ChatMessage]struct{})}
}

// Subscribe adds a listener for a room and returns its channel together with
// a cancel function that removes and closes it.
func (h *Hub) Subscribe(roomID string) (<-chan models.ChatMessage, func()) {
	ch := make(chan models.ChatMessage, 16)

	h.mu.Lock()
	subs, ok := h.rooms[roomID]
	if !ok {
		subs = make(map[chan models.ChatMessage]struct{})
		h.rooms[roomID] = subs
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.rooms[roomID]; ok {
			if _, live := subs[ch]; live {
				delete(subs, ch)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	return ch, cancel
}

// Publish delivers a message to every subscriber of its room.
func (h *Hub) Publish(msg models.ChatMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.rooms[msg.RoomID] {
		select {
		case ch <- msg:
		default:
		}
	}
}
