package usecase

import (
	"context"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
)

// SendNotificationInput is the validated ingress request
type SendNotificationInput struct {
	UserIDs      []string
	Notification entity.NotificationPayload
}

// NotificationUsecase defines the ingress and reconciliation use cases
type NotificationUsecase interface {
	// Enqueue resolves the users' device tokens, stores one pending queue entry
	// and announces it to the dispatcher. It does not wait for the send.
	Enqueue(ctx context.Context, input *SendNotificationInput) (*entity.QueueEntry, error)

	// GetQueueEntry returns a queue entry with its dispatch outcome
	GetQueueEntry(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)

	// ListRecentFailures returns the newest failure records first
	ListRecentFailures(ctx context.Context, limit int) ([]*entity.FailureRecord, error)
}
