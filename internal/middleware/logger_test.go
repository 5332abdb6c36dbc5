package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })
	return &buf
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
		wantCode  int
	}{
		{
			name:      "success logs at info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			wantLevel: "info",
			wantCode:  http.StatusNoContent,
		},
		{
			name:      "client error logs at warn",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusNotFound) },
			wantLevel: "warn",
			wantCode:  http.StatusNotFound,
		},
		{
			name:      "returned error is rendered and logged at error",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "boom") },
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := RequestLogger()(tt.handler)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/api/v1/categories", entry["path"])
			assert.Equal(t, float64(tt.wantCode), entry["status"])
			assert.Equal(t, "request", entry["message"])
		})
	}
}
