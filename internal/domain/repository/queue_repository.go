// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for queue persistence.
var (
	// ErrQueueEntryNotFound is returned when a queue entry does not exist.
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	// ErrQueueEntrySettled is returned when a status update targets an entry that already left pending.
	ErrQueueEntrySettled = errors.New("queue entry already settled")
)

// QueueRepository defines the interface for the notification queue store.
type QueueRepository interface {
	// Create inserts a new entry. The store assigns ID and Timestamp when they are zero.
	Create(ctx context.Context, entry *entity.QueueEntry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error)

	// MarkSent moves a pending entry to sent and attaches the result summary.
	MarkSent(ctx context.Context, id uuid.UUID, summary entity.ResultSummary, at time.Time) error

	// MarkFailed moves a pending entry to failed and records the transport error message.
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string, at time.Time) error

	// DeleteOlderThan removes every entry queued at or before cutoff in a single statement.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
