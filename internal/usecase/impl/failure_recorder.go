package impl

import (
	"context"
	"log/slog"

	deliverycontext "pavilion/internal/delivery/context"
	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/repository"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
)

type failureRecorder struct {
	logger      *slog.Logger
	failureRepo repository.FailureRepository
}

// NewFailureRecorder creates a recorder that appends one failure record per call
func NewFailureRecorder(logger *slog.Logger, failureRepo repository.FailureRepository) usecase.FailureRecorder {
	return &failureRecorder{
		logger:      logger,
		failureRepo: failureRepo,
	}
}

// Record appends the failed tokens as a new record. Errors are only logged.
func (r *failureRecorder) Record(ctx context.Context, entryID uuid.UUID, tokens []entity.FailedToken) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	if len(tokens) == 0 {
		return
	}

	record := &entity.FailureRecord{
		EntryID: entryID,
		Tokens:  tokens,
	}
	if err := r.failureRepo.Create(ctx, record); err != nil {
		logger.Error("Failed to record token failures",
			slog.String("entry_id", entryID.String()),
			slog.Int("failed_count", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Token failures recorded",
		slog.String("entry_id", entryID.String()),
		slog.String("record_id", record.ID.String()),
		slog.Int("failed_count", len(tokens)),
	)
}
