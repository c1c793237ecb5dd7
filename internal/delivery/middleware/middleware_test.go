package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clientverse/config"
	deliverycontext "clientverse/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps caller id", header: "req-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces id with spaces", header: "bad id"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var ctxID string
			next := func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			}

			require.NoError(t, NewRequestIDMiddleware(slog.Default()).Process(next)(c))

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.Equal(t, tt.wantSame, headerID == tt.header)
		})
	}
}

func serveLogged(t *testing.T, debug bool, handler echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process, NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/v1/clients", handler)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil))

	return buf.String()
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	out := serveLogged(t, true, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Contains(t, out, "HTTP Request")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=")
}

func TestLoggerMiddleware_QuietSkipsSuccess(t *testing.T) {
	out := serveLogged(t, false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NotContains(t, out, "HTTP Request")
}

func TestLoggerMiddleware_QuietLogsFailures(t *testing.T) {
	out := serveLogged(t, false, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status=503")
}
