package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	apimiddleware "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/middleware"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/router"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/router/handler"
	mockSvc "github.com/Bilal-EZ-ZAIM/devopes/internal/mocks/service"
	mockUC "github.com/Bilal-EZ-ZAIM/devopes/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return newEcho(cfg, logger, router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
		PharmacyHandler: handler.NewPharmacyHandler(handler.PharmacyHandlerParams{PharmacyUC: mockUC.NewMockPharmacyUsecase(t), Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t), logger),
	})
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "probe-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "probe-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"probe-1"`)
}

func TestNewEcho_RejectsOversizedBody(t *testing.T) {
	e := newTestServer(t)

	body := `{"username":"` + strings.Repeat("a", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestNewEcho_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drugstores", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
