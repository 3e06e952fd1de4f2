package impl

import (
	"context"
	"testing"

	"pavilion/internal/domain/entity"
	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/repository"
	mockRepo "pavilion/internal/mocks/repository"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceTokenService_RegisterToken(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	svc := NewDeviceTokenService(tokenRepo)
	ctx := context.Background()

	tokenRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(token *entity.DeviceToken) bool {
			return token.UserID == "u1" && token.Token == "tA" && token.Platform == "ios"
		})).
		Run(func(_ context.Context, token *entity.DeviceToken) {
			token.ID = uuid.New()
		}).
		Return(nil)

	token, err := svc.RegisterToken(ctx, "u1", &usecase.RegisterTokenInput{Token: " tA ", Platform: "iOS"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, token.ID)
}

func TestDeviceTokenService_ListTokens(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	svc := NewDeviceTokenService(tokenRepo)
	ctx := context.Background()
	tokens := []*entity.DeviceToken{{ID: uuid.New(), UserID: "u1", Token: "tA"}}

	tokenRepo.EXPECT().FindByUser(ctx, "u1").Return(tokens, nil)

	got, err := svc.ListTokens(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, tokens, got)
}

func TestDeviceTokenService_RemoveToken_NotFound(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	svc := NewDeviceTokenService(tokenRepo)
	ctx := context.Background()
	id := uuid.New()

	tokenRepo.EXPECT().Delete(ctx, "u1", id).Return(repository.ErrDeviceTokenNotFound)

	err := svc.RemoveToken(ctx, "u1", id)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenNotFound)
}
