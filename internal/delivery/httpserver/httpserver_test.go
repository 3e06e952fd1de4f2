package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pavilion/config"
	deliverycontext "pavilion/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T, bodyLimit string) *Server {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = bodyLimit

	srv := New(fxtest.NewLifecycle(t), "Test", cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv.Echo().POST("/echo", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return srv
}

func TestServer_PropagatesRequestID(t *testing.T) {
	srv := newTestServer(t, "1KB")

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{}"))
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", rec.Body.String())
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_EnforcesBodyLimit(t *testing.T) {
	srv := newTestServer(t, "4B")

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"userIds":["u1"]}`))
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
