package handler

import (
	"net/http"
	"testing"

	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/entity"
	mockUsecase "pavilion/internal/mocks/usecase"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTokenHandler(t *testing.T) (*DeviceTokenHandler, *mockUsecase.MockDeviceTokenUsecase) {
	uc := mockUsecase.NewMockDeviceTokenUsecase(t)

	return NewDeviceTokenHandler(DeviceTokenHandlerParams{
		DeviceTokenUC: uc,
		Logger:        newTestLogger(),
	}), uc
}

func TestDeviceTokenHandler_RegisterToken(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		h, uc := newDeviceTokenHandler(t)
		uc.EXPECT().RegisterToken(mock.Anything, "u1", &usecase.RegisterTokenInput{Token: "tok", Platform: "ios"}).
			Return(&entity.DeviceToken{ID: uuid.New(), UserID: "u1", Token: "tok", Platform: "ios"}, nil)

		c, rec := newTestContext(http.MethodPost, "/users/u1/tokens", `{"token":"tok","platform":"ios"}`)
		c.SetParamNames("userId")
		c.SetParamValues("u1")

		require.NoError(t, h.RegisterToken(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"tok"`)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		h, _ := newDeviceTokenHandler(t)

		c, rec := newTestContext(http.MethodPost, "/users/u1/tokens", `{"token":"tok","platform":"symbian"}`)
		c.SetParamNames("userId")
		c.SetParamValues("u1")

		require.NoError(t, h.RegisterToken(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeviceTokenHandler_ListTokens(t *testing.T) {
	h, uc := newDeviceTokenHandler(t)
	uc.EXPECT().ListTokens(mock.Anything, "u1").Return([]*entity.DeviceToken{
		{ID: uuid.New(), UserID: "u1", Token: "a"},
		{ID: uuid.New(), UserID: "u1", Token: "b"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/users/u1/tokens", "")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	require.NoError(t, h.ListTokens(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"a"`)
	assert.Contains(t, rec.Body.String(), `"token":"b"`)
}

func TestDeviceTokenHandler_RemoveToken(t *testing.T) {
	tokenID := uuid.New()

	tests := []struct {
		name     string
		param    string
		setup    func(uc *mockUsecase.MockDeviceTokenUsecase)
		wantCode int
	}{
		{
			name:  "removed",
			param: tokenID.String(),
			setup: func(uc *mockUsecase.MockDeviceTokenUsecase) {
				uc.EXPECT().RemoveToken(mock.Anything, "u1", tokenID).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:  "not found",
			param: tokenID.String(),
			setup: func(uc *mockUsecase.MockDeviceTokenUsecase) {
				uc.EXPECT().RemoveToken(mock.Anything, "u1", tokenID).Return(domainerrors.ErrDeviceTokenNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "invalid id",
			param:    "nope",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newDeviceTokenHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			c, rec := newTestContext(http.MethodDelete, "/users/u1/tokens/"+tt.param, "")
			c.SetParamNames("userId", "tokenId")
			c.SetParamValues("u1", tt.param)

			require.NoError(t, h.RemoveToken(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
