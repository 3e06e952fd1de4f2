package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "pavilion/internal/delivery/context"
	"pavilion/internal/domain/entity"
	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/repository"
	"pavilion/internal/domain/service"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	logger      *slog.Logger
	queueRepo   repository.QueueRepository
	failureRepo repository.FailureRepository
	tokenRepo   repository.TokenRepository
	publisher   service.EventPublisher
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	queueRepo repository.QueueRepository,
	failureRepo repository.FailureRepository,
	tokenRepo repository.TokenRepository,
	publisher service.EventPublisher,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:      logger,
		queueRepo:   queueRepo,
		failureRepo: failureRepo,
		tokenRepo:   tokenRepo,
		publisher:   publisher,
	}
}

func (s *notificationService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Enqueue resolves every user's device tokens into one queue entry
func (s *notificationService) Enqueue(ctx context.Context, input *usecase.SendNotificationInput) (*entity.QueueEntry, error) {
	logger := s.getLogger(ctx)

	// Duplicates across users are kept; the provider rejects bad tokens individually.
	tokens := make([]string, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		deviceTokens, err := s.tokenRepo.FindByUser(ctx, userID)
		if err != nil {
			return nil, domainerrors.ErrEnqueueFailed.WithDetails(fmt.Sprintf("failed to resolve tokens for user %s: %v", userID, err))
		}
		for _, deviceToken := range deviceTokens {
			tokens = append(tokens, deviceToken.Token)
		}
	}

	if len(tokens) == 0 {
		logger.Info("No device tokens found", slog.Int("user_count", len(input.UserIDs)))

		return nil, domainerrors.ErrNoTokensFound
	}

	entry := &entity.QueueEntry{
		Tokens:       tokens,
		Notification: input.Notification,
		Status:       entity.QueueStatusPending,
	}
	if err := s.queueRepo.Create(ctx, entry); err != nil {
		return nil, domainerrors.ErrEnqueueFailed.WithDetails(err.Error())
	}

	event := &service.QueueEntryCreatedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EntryID:      entry.ID.String(),
		Tokens:       entry.Tokens,
		Notification: entry.Notification,
		Status:       entry.Status,
		Timestamp:    entry.Timestamp,
	}
	if err := s.publisher.PublishQueueEntryCreated(ctx, event); err != nil {
		// The pending entry is left for the retention sweeper.
		logger.Error("Failed to publish queue entry event",
			slog.String("entry_id", event.EntryID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrEnqueueFailed.WithDetails(err.Error())
	}

	logger.Info("Notification queued",
		slog.String("entry_id", event.EntryID),
		slog.Int("user_count", len(input.UserIDs)),
		slog.Int("token_count", len(tokens)),
	)

	return entry, nil
}

// GetQueueEntry returns a queue entry with its dispatch outcome
func (s *notificationService) GetQueueEntry(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	entry, err := s.queueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQueueEntryNotFound) {
			return nil, domainerrors.ErrQueueEntryNotFound
		}

		return nil, fmt.Errorf("failed to find queue entry: %w", err)
	}

	return entry, nil
}

// ListRecentFailures returns the newest failure records first
func (s *notificationService) ListRecentFailures(ctx context.Context, limit int) ([]*entity.FailureRecord, error) {
	records, err := s.failureRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list failure records: %w", err)
	}

	return records, nil
}
