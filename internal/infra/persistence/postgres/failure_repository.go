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

const defaultFailureListLimit = 50

// failureRepository implements the repository.FailureRepository interface.
type failureRepository struct {
	db *gorm.DB
}

// NewFailureRepository is the constructor for failureRepository.
func NewFailureRepository(db *gorm.DB) repository.FailureRepository {
	return &failureRepository{
		db: db,
	}
}

// Create appends a failure record.
func (repo *failureRepository) Create(ctx context.Context, record *entity.FailureRecord) error {
	if record.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate failure record id")
		}
		record.ID = id
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	recordM := &model.FailureRecordModel{
		ID:         record.ID,
		EntryID:    record.EntryID,
		Tokens:     record.Tokens,
		RecordedAt: record.Timestamp,
	}
	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create failure record")
	}

	return nil
}

// FindRecent lists the newest failure records first.
func (repo *failureRepository) FindRecent(ctx context.Context, limit int) ([]*entity.FailureRecord, error) {
	if limit <= 0 {
		limit = defaultFailureListLimit
	}

	var recordModels []*model.FailureRecordModel
	if err := repo.db.WithContext(ctx).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list failure records")
	}

	records := make([]*entity.FailureRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, &entity.FailureRecord{
			ID:        recordM.ID,
			EntryID:   recordM.EntryID,
			Tokens:    recordM.Tokens,
			Timestamp: recordM.RecordedAt,
		})
	}

	return records, nil
}

// DeleteOlderThan removes every record created at or before cutoff.
func (repo *failureRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recorded_at <= ?", cutoff).
		Delete(&model.FailureRecordModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old failure records")
	}

	return result.RowsAffected, nil
}
