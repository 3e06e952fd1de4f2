package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken represents a push registration of one of a user's devices.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`         // Registration id.
	UserID    string    `json:"user_id"`    // The owning user.
	Token     string    `json:"token"`      // Firebase Cloud Messaging registration token.
	Platform  string    `json:"platform"`   // Device platform (ios, android, web).
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this token was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
