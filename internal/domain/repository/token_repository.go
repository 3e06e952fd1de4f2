package repository

import (
	"context"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device token persistence.
var (
	// ErrDeviceTokenNotFound is returned when a device token is not found.
	ErrDeviceTokenNotFound = errors.New("device token not found")
)

// TokenRepository defines the interface for the per-user device token store.
type TokenRepository interface {
	// FindByUser retrieves every token registered for a user, oldest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// Upsert registers a token for a user, refreshing the platform if the pair already exists.
	Upsert(ctx context.Context, token *entity.DeviceToken) error

	// Delete removes one registration owned by the user.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
