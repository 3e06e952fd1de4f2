package handler

import (
	"log/slog"
	"net/http"

	"pavilion/internal/delivery/api/response"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceTokenHandlerParams holds dependencies for DeviceTokenHandler, injected by Fx.
type DeviceTokenHandlerParams struct {
	fx.In

	DeviceTokenUC usecase.DeviceTokenUsecase
	Logger        *slog.Logger
}

// DeviceTokenHandler holds dependencies for device token handlers
type DeviceTokenHandler struct {
	deviceTokenUC usecase.DeviceTokenUsecase
	logger        *slog.Logger
}

// NewDeviceTokenHandler is the constructor for DeviceTokenHandler
func NewDeviceTokenHandler(params DeviceTokenHandlerParams) *DeviceTokenHandler {
	return &DeviceTokenHandler{
		deviceTokenUC: params.DeviceTokenUC,
		logger:        params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a device token
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required,notblank"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterToken registers a device token for the path user
func (h *DeviceTokenHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidArgument(c, "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidArgument(c, "token is required and platform must be one of ios, android, web")
	}

	token, err := h.deviceTokenUC.RegisterToken(c.Request().Context(), c.Param("userId"), &usecase.RegisterTokenInput{
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token, "Device token registered")
}

// ListTokens lists the device tokens of the path user
func (h *DeviceTokenHandler) ListTokens(c echo.Context) error {
	tokens, err := h.deviceTokenUC.ListTokens(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens, "")
}

// RemoveToken deletes one device token of the path user
func (h *DeviceTokenHandler) RemoveToken(c echo.Context) error {
	tokenID, err := uuid.Parse(c.Param("tokenId"))
	if err != nil {
		return response.InvalidArgument(c, "tokenId must be a valid UUID")
	}

	if err := h.deviceTokenUC.RemoveToken(c.Request().Context(), c.Param("userId"), tokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
