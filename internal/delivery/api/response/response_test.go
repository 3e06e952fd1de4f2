package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pavilion/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "no tokens",
			err:      domainerrors.ErrNoTokensFound,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"No device tokens found for users"}`,
		},
		{
			name:     "enqueue failure exposes details",
			err:      errors.Wrap(domainerrors.ErrEnqueueFailed.WithDetails("publish timeout"), "enqueue"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"error":"Failed to send notification","details":"publish timeout"}`,
		},
		{
			name:     "invalid argument",
			err:      domainerrors.ErrInvalidArgument.WithMessage("userIds must be a non-empty array"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"userIds must be a non-empty array","error":"Invalid argument"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandleAppError_PassesThroughPlainErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))

	assert.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestQueued(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Queued(c, "0190a1b2-0000-7000-8000-000000000001"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Notification queued","notificationId":"0190a1b2-0000-7000-8000-000000000001"}`,
		rec.Body.String(),
	)
}
