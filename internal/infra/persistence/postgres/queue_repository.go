// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"pavilion/internal/domain/entity"
	domainerrors "pavilion/internal/domain/errors"
	"pavilion/internal/domain/repository"
	"pavilion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// queueRepository implements the repository.QueueRepository interface.
type queueRepository struct {
	db *gorm.DB
}

// NewQueueRepository is the constructor for queueRepository.
func NewQueueRepository(db *gorm.DB) repository.QueueRepository {
	return &queueRepository{
		db: db,
	}
}

// Create inserts a pending entry.
func (repo *queueRepository) Create(ctx context.Context, entry *entity.QueueEntry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate queue entry id")
		}
		entry.ID = id
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Status == "" {
		entry.Status = entity.QueueStatusPending
	}

	entryM := fromQueueEntryDomain(entry)
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create queue entry")
	}

	return nil
}

// FindByID retrieves an entry by its ID.
func (repo *queueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.QueueEntry, error) {
	var entryM model.QueueEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQueueEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find queue entry by ID")
	}

	return toQueueEntryDomain(&entryM), nil
}

// MarkSent settles a pending entry as sent.
func (repo *queueRepository) MarkSent(ctx context.Context, id uuid.UUID, summary entity.ResultSummary, at time.Time) error {
	return repo.settle(ctx, id, &model.QueueEntryModel{
		Status:        string(entity.QueueStatusSent),
		ResultSummary: &summary,
		DispatchedAt:  &at,
	})
}

// MarkFailed settles a pending entry as failed.
func (repo *queueRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string, at time.Time) error {
	return repo.settle(ctx, id, &model.QueueEntryModel{
		Status:       string(entity.QueueStatusFailed),
		ErrorMessage: errorMessage,
		DispatchedAt: &at,
	})
}

// settle applies the update only while the entry is still pending, so an entry
// transitions out of pending at most once even under redelivery.
// Zero-valued fields of updates are left untouched.
func (repo *queueRepository) settle(ctx context.Context, id uuid.UUID, updates *model.QueueEntryModel) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QueueEntryModel{}).
		Where("id = ? AND status = ?", id, string(entity.QueueStatusPending)).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update queue entry status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.QueueEntryModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check queue entry existence")
	}
	if count == 0 {
		return repository.ErrQueueEntryNotFound
	}

	return repository.ErrQueueEntrySettled
}

// DeleteOlderThan removes every entry queued at or before cutoff.
func (repo *queueRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("queued_at <= ?", cutoff).
		Delete(&model.QueueEntryModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old queue entries")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toQueueEntryDomain converts a GORM QueueEntryModel to a domain QueueEntry entity.
func toQueueEntryDomain(data *model.QueueEntryModel) *entity.QueueEntry {
	if data == nil {
		return nil
	}

	return &entity.QueueEntry{
		ID:            data.ID,
		Tokens:        data.Tokens,
		Notification:  data.Notification,
		Status:        entity.QueueStatus(data.Status),
		Timestamp:     data.QueuedAt,
		ResultSummary: data.ResultSummary,
		ErrorMessage:  data.ErrorMessage,
		DispatchedAt:  data.DispatchedAt,
	}
}

// fromQueueEntryDomain converts a domain QueueEntry entity to a GORM QueueEntryModel.
func fromQueueEntryDomain(data *entity.QueueEntry) *model.QueueEntryModel {
	if data == nil {
		return nil
	}

	return &model.QueueEntryModel{
		ID:            data.ID,
		Tokens:        data.Tokens,
		Notification:  data.Notification,
		Status:        string(data.Status),
		ResultSummary: data.ResultSummary,
		ErrorMessage:  data.ErrorMessage,
		QueuedAt:      data.Timestamp,
		DispatchedAt:  data.DispatchedAt,
	}
}
