package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"biolink/internal/domain/entity"
	"biolink/internal/infra/cache"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Ready(t *testing.T) {
	profileCache := cache.NewProfileCache()
	h := NewHealthHandler(HealthHandlerParams{Snapshot: profileCache})

	ready := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
		require.NoError(t, h.Ready(c))

		return rec
	}

	rec := ready()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"starting","profiles":0}`, rec.Body.String())

	profileCache.Replace([]entity.Profile{{ID: "1"}, {ID: "2"}}, "1")

	rec = ready()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","version":1,"profiles":2}`, rec.Body.String())
}

func TestHealthHandler_Live(t *testing.T) {
	h := NewHealthHandler(HealthHandlerParams{Snapshot: cache.NewProfileCache()})

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, h.Live(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
