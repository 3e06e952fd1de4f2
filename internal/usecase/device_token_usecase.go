package usecase

import (
	"context"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterTokenInput represents a device token registration
type RegisterTokenInput struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// DeviceTokenUsecase defines the Token Store management use cases
type DeviceTokenUsecase interface {
	// RegisterToken registers a token for the user or refreshes an existing registration
	RegisterToken(ctx context.Context, userID string, input *RegisterTokenInput) (*entity.DeviceToken, error)

	// ListTokens lists every token registered for the user
	ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// RemoveToken deletes one of the user's registrations
	RemoveToken(ctx context.Context, userID string, tokenID uuid.UUID) error
}
