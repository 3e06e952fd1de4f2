package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"pavilion/internal/delivery/api/response"
	"pavilion/internal/domain/entity"
	"pavilion/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgUserIDsRequired      = "userIds must be a non-empty array"
	msgUserIDsBlank         = "userIds must contain non-empty strings"
	msgNotificationRequired = "notification.title and notification.body are required"

	defaultFailureLimit = 50
	maxFailureLimit     = 500
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest represents the request body for queueing a notification
type SendNotificationRequest struct {
	UserIDs      []string             `json:"userIds" validate:"required,min=1,dive,notblank"`
	Notification *NotificationRequest `json:"notification" validate:"required"`
}

// NotificationRequest is the notification content of a SendNotificationRequest
type NotificationRequest struct {
	Title string            `json:"title" validate:"required,notblank"`
	Body  string            `json:"body" validate:"required,notblank"`
	Icon  string            `json:"icon,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendNotification queues a notification for every device of the given users
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidArgument(c, bindErrorMessage(err))
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidArgument(c, validationMessage(err))
	}

	entry, err := h.notificationUC.Enqueue(c.Request().Context(), &usecase.SendNotificationInput{
		UserIDs: req.UserIDs,
		Notification: entity.NotificationPayload{
			Title: req.Notification.Title,
			Body:  req.Notification.Body,
			Icon:  req.Notification.Icon,
			Data:  req.Notification.Data,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Queued(c, entry.ID.String())
}

// GetQueueEntry returns a queued notification with its dispatch outcome
func (h *NotificationHandler) GetQueueEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidArgument(c, "id must be a valid UUID")
	}

	entry, err := h.notificationUC.GetQueueEntry(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// ListFailures returns the most recent failure records
func (h *NotificationHandler) ListFailures(c echo.Context) error {
	limit := defaultFailureLimit
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			return response.InvalidArgument(c, "limit must be a positive integer")
		}
		limit = min(parsed, maxFailureLimit)
	}

	records, err := h.notificationUC.ListRecentFailures(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// bindErrorMessage maps JSON type mismatches onto the field messages used by validation.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return "Invalid request body"
	}

	switch {
	case strings.HasPrefix(typeErr.Field, "userIds"):
		if typeErr.Type != nil && typeErr.Type.Kind() == reflect.Slice {
			return msgUserIDsRequired
		}

		return msgUserIDsBlank
	case strings.HasPrefix(typeErr.Field, "notification"):
		return msgNotificationRequired
	default:
		return "Invalid request body"
	}
}

// validationMessage reports the first failing field of a SendNotificationRequest.
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	field := validationErrs[0].Field()
	switch {
	case field == "userIds":
		return msgUserIDsRequired
	case strings.HasPrefix(field, "userIds["):
		return msgUserIDsBlank
	default:
		return msgNotificationRequired
	}
}
