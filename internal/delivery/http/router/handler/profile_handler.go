package handler

import (
	"log/slog"
	"net/http"

	"biolink/internal/delivery/http/response"
	"biolink/internal/domain/service"
	"biolink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// ProfileHandler serves the profile JSON API.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

// ProfileIDRequest is the path parameter of single-profile routes.
type ProfileIDRequest struct {
	ID string `param:"id" validate:"required"`
}

// GetMainProfile handles GET /api/profile
func (h *ProfileHandler) GetMainProfile(c echo.Context) error {
	profile, err := h.profileUC.GetMainProfile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfile handles GET /api/profile/:id
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	req, err := h.bindProfileID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListProfiles handles GET /api/profiles
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.profileUC.ListProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// GetProfileQR handles GET /api/profile/:id/qr with a PNG linking to the card page.
func (h *ProfileHandler) GetProfileQR(c echo.Context) error {
	req, err := h.bindProfileID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCode.GenerateCardQR(h.profileUC.CardURL(profile))
	if err != nil {
		h.logger.Error("Failed to generate QR code", slog.String("id", req.ID), slog.Any("error", err))

		return response.InternalServerError(c, "QR_GENERATION_FAILED", "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProfileHandler) bindProfileID(c echo.Context) (*ProfileIDRequest, error) {
	var req ProfileIDRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
