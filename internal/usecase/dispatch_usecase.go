package usecase

import (
	"context"

	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/service"

	"github.com/google/uuid"
)

// DispatchUsecase reacts to queue entry creation events
type DispatchUsecase interface {
	// Dispatch sends the entry's notification and settles its status.
	// A returned error marked retryable asks the transport to redeliver the event.
	Dispatch(ctx context.Context, event *service.QueueEntryCreatedEvent) error
}

// FailureRecorder appends per-token delivery failures.
// Record never fails; store errors are logged by the implementation.
type FailureRecorder interface {
	Record(ctx context.Context, entryID uuid.UUID, tokens []entity.FailedToken)
}
