package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pavilion/internal/delivery/context"
	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/repository"
	"pavilion/internal/domain/service"
	"pavilion/internal/errors"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
)

type dispatchService struct {
	logger    *slog.Logger
	queueRepo repository.QueueRepository
	pushSvc   service.PushService
	recorder  usecase.FailureRecorder
	now       func() time.Time
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	logger *slog.Logger,
	queueRepo repository.QueueRepository,
	pushSvc service.PushService,
	recorder usecase.FailureRecorder,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:    logger,
		queueRepo: queueRepo,
		pushSvc:   pushSvc,
		recorder:  recorder,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *dispatchService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Dispatch sends one multicast for the entry and settles its status.
// Redelivered events are sent again; only the first status update sticks.
func (s *dispatchService) Dispatch(ctx context.Context, event *service.QueueEntryCreatedEvent) error {
	logger := s.getLogger(ctx).With(slog.String("entry_id", event.EntryID))

	if len(event.Tokens) == 0 {
		logger.Warn("Queue entry has no tokens, skipping dispatch")

		return nil
	}

	entryID, err := uuid.Parse(event.EntryID)
	if err != nil {
		// Redelivery cannot fix a malformed id.
		return errors.Wrapf(err, "invalid entry id %q", event.EntryID)
	}

	result, err := s.pushSvc.SendMulticast(ctx, event.Tokens, event.Notification)
	if err != nil {
		logger.Error("Multicast send failed", slog.Any("error", err))

		if updateErr := s.queueRepo.MarkFailed(ctx, entryID, err.Error(), s.now()); updateErr != nil {
			s.logSettleError(logger, updateErr)
			if errors.Is(updateErr, repository.ErrQueueEntryNotFound) {
				// A swept entry is never retried.
				return errors.Wrap(err, "multicast send failed for removed entry")
			}
		}

		return errors.Retryable(errors.Wrap(err, "multicast send failed"))
	}

	summary := entity.ResultSummary{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	}
	if err := s.queueRepo.MarkSent(ctx, entryID, summary, s.now()); err != nil {
		if !s.logSettleError(logger, err) {
			return errors.Retryable(errors.Wrap(err, "failed to mark entry sent"))
		}
	}

	logger.Info("Queue entry dispatched",
		slog.Int("token_count", len(event.Tokens)),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
	)

	if result.FailureCount > 0 {
		s.recorder.Record(ctx, entryID, failedTokens(event.Tokens, result.Responses))
	}

	return nil
}

// logSettleError logs a status update error and reports whether it is benign.
// A settled entry means a redelivery; a missing entry was already swept.
func (s *dispatchService) logSettleError(logger *slog.Logger, err error) bool {
	switch {
	case errors.Is(err, repository.ErrQueueEntrySettled):
		logger.Info("Queue entry already settled, keeping first outcome")

		return true
	case errors.Is(err, repository.ErrQueueEntryNotFound):
		logger.Warn("Queue entry no longer exists, status update skipped")

		return true
	default:
		logger.Error("Failed to update queue entry status", slog.Any("error", err))

		return false
	}
}

// failedTokens pairs each failed response with the token at the same position
func failedTokens(tokens []string, responses []service.SendResponse) []entity.FailedToken {
	failed := make([]entity.FailedToken, 0)
	for i, response := range responses {
		if response.Success || i >= len(tokens) {
			continue
		}
		failed = append(failed, entity.FailedToken{
			Token:     tokens[i],
			ErrorCode: response.ErrorCode,
		})
	}

	return failed
}
