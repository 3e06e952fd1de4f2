package model

import (
	"time"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
)

// QueueEntryModel is the GORM-specific struct for the 'queue_entries' table.
type QueueEntryModel struct {
	ID            uuid.UUID                  `gorm:"type:uuid;primary_key"`
	Tokens        []string                   `gorm:"serializer:json;type:jsonb;not null"`
	Notification  entity.NotificationPayload `gorm:"serializer:json;type:jsonb;not null"`
	Status        string                     `gorm:"type:varchar(16);not null;index"`
	ResultSummary *entity.ResultSummary      `gorm:"serializer:json;type:jsonb"`
	ErrorMessage  string                     `gorm:"type:text"`
	QueuedAt      time.Time                  `gorm:"not null;index"`
	DispatchedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (QueueEntryModel) TableName() string {
	return "queue_entries"
}
