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
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// FindByUser retrieves every token registered for a user, oldest first.
func (repo *tokenRepository) FindByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// Upsert registers a token, refreshing the platform when the (user, token) pair exists.
// The stored row, including its original ID and CreatedAt, is written back into token.
func (repo *tokenRepository) Upsert(ctx context.Context, token *entity.DeviceToken) error {
	if token.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate device token id")
		}
		token.ID = id
	}

	now := time.Now().UTC()
	tokenM := fromDeviceTokenDomain(token)
	tokenM.CreatedAt = now
	tokenM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
				DoUpdates: clause.AssignmentColumns([]string{"platform", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidArgument.WithDetails("missing required device token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	*token = *toDeviceTokenDomain(tokenM)

	return nil
}

// Delete removes one registration owned by the user.
func (repo *tokenRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DeviceTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
