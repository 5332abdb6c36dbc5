package handler

import (
	"net/http"

	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, allowedOrigins []string) *WebSocketHandler {
	// Build origin lookup map
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients send no Origin header
		return true
	}

	if h.allowedOrigins[origin] || h.allowedOrigins["*"] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS godoc
// @Summary Subscribe to budget alerts
// @Description Upgrades to a WebSocket that receives budget.alert, budget.recovered and entity change events.
// @Tags websocket
// @Success 101
// @Failure 403
// @Router /ws [get]
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	if !h.checkOrigin(c.Request()) {
		return echo.NewHTTPError(http.StatusForbidden, "origin not allowed")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("client_id", client.ID()).
		Str("remote_ip", c.RealIP()).
		Msg("WebSocket client connected")

	// Start read/write pumps in goroutines
	go client.WritePump()
	go client.ReadPump()

	return nil
}
