package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowedOrigins = []string{"http://localhost:3000", "https://budgetly.app"}

func TestWebSocketHandler_HandleWS_NoUpgrade(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	// Plain GET without upgrade headers
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	// gorilla/websocket returns an error when upgrade fails
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestWebSocketHandler_HandleWS_RejectsOrigin(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://evil.com")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandleWS(c)

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	hub := websocket.NewHub()
	h := NewWebSocketHandler(hub, testAllowedOrigins)

	tests := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"allowed origin", "http://localhost:3000", true},
		{"allowed origin https", "https://budgetly.app", true},
		{"disallowed origin", "https://evil.com", false},
		{"empty origin (non-browser)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			result := h.checkOrigin(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWebSocketHandler_CheckOrigin_Wildcard(t *testing.T) {
	h := NewWebSocketHandler(websocket.NewHub(), []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	assert.True(t, h.checkOrigin(req))
}

func TestWebSocketHandler_ReceivesBroadcast(t *testing.T) {
	e := echo.New()
	hub := websocket.NewHub()
	defer hub.CloseAll()
	h := NewWebSocketHandler(hub, testAllowedOrigins)
	e.GET("/ws", h.HandleWS)

	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(websocket.BudgetAlert(map[string]string{"budgetId": "2", "status": "warning"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string            `json:"type"`
		Entity  string            `json:"entity"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "budget.alert", event.Type)
	assert.Equal(t, "budget", event.Entity)
	assert.Equal(t, "2", event.Payload["budgetId"])
}
