package repository

import (
	"context"
	"time"

	"pavilion/internal/domain/entity"
)

// FailureRepository defines the interface for the failure record store.
type FailureRepository interface {
	// Create appends a failure record. The store assigns ID when it is zero.
	Create(ctx context.Context, record *entity.FailureRecord) error

	// FindRecent lists the newest failure records first.
	FindRecent(ctx context.Context, limit int) ([]*entity.FailureRecord, error)

	// DeleteOlderThan removes every record created at or before cutoff in a single statement.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
