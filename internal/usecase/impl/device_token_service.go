package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pavilion/internal/domain/entity"
	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/repository"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
)

type deviceTokenService struct {
	tokenRepo repository.TokenRepository
}

// NewDeviceTokenService creates a new device token service instance
func NewDeviceTokenService(tokenRepo repository.TokenRepository) usecase.DeviceTokenUsecase {
	return &deviceTokenService{
		tokenRepo: tokenRepo,
	}
}

// RegisterToken registers a token for the user or refreshes an existing registration
func (s *deviceTokenService) RegisterToken(ctx context.Context, userID string, input *usecase.RegisterTokenInput) (*entity.DeviceToken, error) {
	token := &entity.DeviceToken{
		UserID:   userID,
		Token:    strings.TrimSpace(input.Token),
		Platform: strings.ToLower(input.Platform),
	}

	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to register device token: %w", err)
	}

	return token, nil
}

// ListTokens lists every token registered for the user
func (s *deviceTokenService) ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}

	return tokens, nil
}

// RemoveToken deletes one of the user's registrations
func (s *deviceTokenService) RemoveToken(ctx context.Context, userID string, tokenID uuid.UUID) error {
	if err := s.tokenRepo.Delete(ctx, userID, tokenID); err != nil {
		if errors.Is(err, repository.ErrDeviceTokenNotFound) {
			return domainerrors.ErrDeviceTokenNotFound
		}

		return fmt.Errorf("failed to remove device token: %w", err)
	}

	return nil
}
