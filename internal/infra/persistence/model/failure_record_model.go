package model

import (
	"time"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
)

// FailureRecordModel is the GORM-specific struct for the 'failure_records' table.
// Each row lists the tokens rejected during one dispatch.
type FailureRecordModel struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key"`
	EntryID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Tokens     []entity.FailedToken `gorm:"serializer:json;type:jsonb;not null"`
	RecordedAt time.Time            `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FailureRecordModel) TableName() string {
	return "failure_records"
}
