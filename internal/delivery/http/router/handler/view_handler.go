package handler

import (
	"net/http"

	"biolink/internal/delivery/http/response"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ViewHandlerParams holds dependencies for ViewHandler, injected by Fx.
type ViewHandlerParams struct {
	fx.In

	ViewUC usecase.ViewUsecase
}

// ViewHandler serves the page view counter.
type ViewHandler struct {
	viewUC usecase.ViewUsecase
}

// NewViewHandler is the constructor for ViewHandler
func NewViewHandler(params ViewHandlerParams) *ViewHandler {
	return &ViewHandler{viewUC: params.ViewUC}
}

// ViewsResponse is the body of GET /api/views.
type ViewsResponse struct {
	Views int64 `json:"views"`
}

// CountView handles GET /api/views: it increments the counter and returns the total.
func (h *ViewHandler) CountView(c echo.Context) error {
	views := h.viewUC.Increment(c.Request().Context())

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return response.Success(c, http.StatusOK, ViewsResponse{Views: views})
}
