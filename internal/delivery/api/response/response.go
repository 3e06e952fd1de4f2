package response

import (
	"net/http"

	domainerrors "pavilion/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Body is the envelope of every API response
type Body struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`   // Short error label
	Details        string `json:"details,omitempty"` // Underlying cause, when safe to expose
	NotificationID string `json:"notificationId,omitempty"`
	Data           any    `json:"data,omitempty"`
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Queued acknowledges an accepted notification
func Queued(c echo.Context, notificationID string) error {
	return c.JSON(http.StatusOK, Body{
		Success:        true,
		Message:        "Notification queued",
		NotificationID: notificationID,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, title, message, details string) error {
	// Never explain why authentication failed beyond the message.
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, Body{
		Success: false,
		Error:   title,
		Message: message,
		Details: details,
	})
}

// InvalidArgument returns a 400 error with a reason string
func InvalidArgument(c echo.Context, message string) error {
	return AppError(c, domainerrors.ErrInvalidArgument.WithMessage(message))
}

// AppError renders an application error
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.Title(), appErr.Message(), appErr.Details())
}

// HandleAppError renders application errors and passes anything else to the HTTP error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
