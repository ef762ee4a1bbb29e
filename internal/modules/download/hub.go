package download

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub pushes bundling progress to connected clients, keyed by session id.
// One connection per session; a reconnect replaces the old socket.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[sessionID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[sessionID] = conn
}

func (h *Hub) Unregister(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[sessionID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, sessionID)
	}
}

// Send pushes one progress event. A write failure drops the connection; the
// download itself never depends on the socket being alive.
func (h *Hub) Send(sessionID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[sessionID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(message); err != nil {
		h.Unregister(sessionID)
		return false
	}

	return true
}

func (h *Hub) IsConnected(sessionID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[sessionID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for sessionID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, sessionID)
	}
}
