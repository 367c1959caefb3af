package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	coreport "github.com/playkaro/teenpatti-server/internal/domain/port/core"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/middleware"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/realtime"
)

// WebSocketHandler upgrades subscriber connections and hands them to the hub
type WebSocketHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   coreport.Logger
}

// NewWebSocketHandler creates a new websocket handler instance
func NewWebSocketHandler(hub *realtime.Hub, logger coreport.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks belong to the gateway in front of this service
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles the GET /ws endpoint
func (h *WebSocketHandler) Serve(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	realtime.NewConnection(conn, h.hub, userID, h.logger).Start()
}
