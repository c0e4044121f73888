// README: WebSocket hub; one room of subscribers per booking id.
package chat

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

// Hub fans messages out to every connection subscribed to a booking. Delivery
// is best-effort: a write failure drops that subscriber, never the message
// flow for the rest of the room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[types.ID]map[*websocket.Conn]bool
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rooms:  make(map[types.ID]map[*websocket.Conn]bool),
		logger: logger,
	}
}

func (h *Hub) Subscribe(bookingID types.ID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[bookingID]
	if !ok {
		room = make(map[*websocket.Conn]bool)
		h.rooms[bookingID] = room
	}
	room[conn] = true
	h.logger.Debug("chat subscriber joined", zap.String("booking_id", string(bookingID)))
}

func (h *Hub) Unsubscribe(bookingID types.ID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(bookingID, conn)
}

// Broadcast writes the payload to every subscriber of the booking's room.
func (h *Hub) Broadcast(bookingID types.ID, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.rooms[bookingID] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("chat delivery failed, dropping subscriber",
				zap.String("booking_id", string(bookingID)), zap.Error(err))
			h.removeLocked(bookingID, conn)
			_ = conn.Close()
		}
	}
}

// Subscribers reports the current room size.
func (h *Hub) Subscribers(bookingID types.ID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[bookingID])
}

func (h *Hub) removeLocked(bookingID types.ID, conn *websocket.Conn) {
	room, ok := h.rooms[bookingID]
	if !ok {
		return
	}
	delete(room, conn)
	if len(room) == 0 {
		delete(h.rooms, bookingID)
	}
}
