package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"stoper/internal/api/ws"
	"stoper/internal/config"
)

type WebSocketHandler struct {
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(cfg *config.Config) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Dev serves the frontend from a different port.
				if !cfg.IsProduction() {
					return true
				}
				origin, err := url.Parse(r.Header.Get("Origin"))
				if err != nil {
					return false
				}
				return origin.Host == r.Host
			},
		},
	}
}

// HandleConnection godoc
// @Summary Stock alert stream
// @Description Upgrades to a websocket that receives critical_stock messages
// @Tags alerts
// @Router /api/ws [get]
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return err
	}

	hub := ws.GetHub()
	id := hub.Register(conn)
	defer hub.Unregister(id)

	// Clients only listen; the read loop exists to notice disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}
