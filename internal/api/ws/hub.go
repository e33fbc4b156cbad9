// Package ws pushes stock alerts to connected dashboards, replacing the
// in-page toast channel of a single-client setup.
package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type CriticalStockData struct {
	ToolID       string `json:"toolId"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
}

type Hub struct {
	connections map[uuid.UUID]*websocket.Conn
	mu          sync.RWMutex
}

var globalHub *Hub
var once sync.Once

func GetHub() *Hub {
	once.Do(func() {
		globalHub = &Hub{
			connections: make(map[uuid.UUID]*websocket.Conn),
		}
	})
	return globalHub
}

// Register adds a connection and returns the id to unregister it with.
func (h *Hub) Register(conn *websocket.Conn) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[id] = conn
	log.Printf("[Hub] client %s connected, total %d", id, len(h.connections))
	return id
}

func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[id]; exists {
		conn.Close()
		delete(h.connections, id)
		log.Printf("[Hub] client %s disconnected, total %d", id, len(h.connections))
	}
}

// Broadcast sends a message to every connected client. Write failures
// drop only the failing connection.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] marshal broadcast: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.connections {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.connections, id)
		}
	}
}

// SendCriticalStockAlert announces that a tool has hit its threshold.
func (h *Hub) SendCriticalStockAlert(toolID, name string, quantity, minThreshold int) {
	h.Broadcast(Message{
		Type: "critical_stock",
		Data: CriticalStockData{
			ToolID:       toolID,
			Name:         name,
			Quantity:     quantity,
			MinThreshold: minThreshold,
		},
	})
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
