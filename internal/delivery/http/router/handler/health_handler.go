package handler

import (
	"net/http"

	"biolink/internal/delivery/http/response"
	"biolink/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Snapshot repository.ProfileSnapshotRepository
}

// HealthHandler reports liveness and cache readiness.
type HealthHandler struct {
	snapshot repository.ProfileSnapshotRepository
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{snapshot: params.Snapshot}
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  uint64 `json:"version,omitempty"`
	Profiles int    `json:"profiles"`
}

// Live handles GET /health
func (h *HealthHandler) Live(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready; it fails until the first refresh finished.
func (h *HealthHandler) Ready(c echo.Context) error {
	if !h.snapshot.IsReady() {
		return response.JSON(c, http.StatusServiceUnavailable, HealthResponse{Status: "starting"})
	}

	snap := h.snapshot.Snapshot()

	return response.Success(c, http.StatusOK, HealthResponse{
		Status:   "ready",
		Version:  snap.Version,
		Profiles: len(snap.Profiles),
	})
}
