package usecase

import (
	"context"
	"time"
)

// StoreSweepResult is the outcome of sweeping one store
type StoreSweepResult struct {
	Deleted int64
	Err     error
}

// SweepReport summarizes one retention run
type SweepReport struct {
	Cutoff   time.Time
	Queue    StoreSweepResult
	Failures StoreSweepResult
}

// RetentionUsecase purges queue entries and failure records past their retention age
type RetentionUsecase interface {
	// Sweep deletes everything timestamped at or before now minus the retention age.
	// The stores are swept independently; per-store errors are reported, never returned.
	Sweep(ctx context.Context) *SweepReport
}
