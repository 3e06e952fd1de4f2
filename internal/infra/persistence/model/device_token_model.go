package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_tokens_user_token,priority:1"`
	Token     string    `gorm:"type:varchar(4096);not null;uniqueIndex:idx_device_tokens_user_token,priority:2"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
