package entity

import (
	"time"

	"github.com/google/uuid"
)

// FailedToken pairs a device token with the provider error code it was rejected with.
type FailedToken struct {
	Token     string `json:"token"`
	ErrorCode string `json:"error"`
}

// FailureRecord captures the tokens that failed during one dispatch.
// It is immutable once created and only removed by retention.
type FailureRecord struct {
	ID        uuid.UUID     `json:"id"`
	EntryID   uuid.UUID     `json:"entryId"`
	Tokens    []FailedToken `json:"tokens"`
	Timestamp time.Time     `json:"timestamp"`
}
