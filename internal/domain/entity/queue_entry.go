// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueueStatus is the dispatch state of a queue entry.
type QueueStatus string

const (
	// QueueStatusPending marks an entry waiting for the dispatcher.
	QueueStatusPending QueueStatus = "pending"
	// QueueStatusSent marks an entry whose multicast send was attempted, even if some tokens failed.
	QueueStatusSent QueueStatus = "sent"
	// QueueStatusFailed marks an entry whose provider call failed at the transport level.
	QueueStatusFailed QueueStatus = "failed"
)

// IsSettled reports whether the status is terminal.
func (s QueueStatus) IsSettled() bool {
	return s == QueueStatusSent || s == QueueStatusFailed
}

// NotificationPayload is the user-visible content of a push notification.
type NotificationPayload struct {
	Title string            `json:"title"`          // Notification title shown by the device.
	Body  string            `json:"body"`           // Notification body text.
	Icon  string            `json:"icon,omitempty"` // Optional icon name or URL.
	Data  map[string]string `json:"data,omitempty"` // Optional key-value data delivered to the app.
}

// ResultSummary aggregates the provider outcome of one multicast send.
type ResultSummary struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// QueueEntry represents one notification job waiting for or processed by the dispatcher.
type QueueEntry struct {
	ID            uuid.UUID           `json:"id"`                      // Assigned by the store on insert.
	Tokens        []string            `json:"tokens"`                  // Target device tokens, never empty at creation.
	Notification  NotificationPayload `json:"notification"`            // The payload to deliver.
	Status        QueueStatus         `json:"status"`                  // pending, then exactly one of sent or failed.
	Timestamp     time.Time           `json:"timestamp"`               // When the entry was queued; drives retention.
	ResultSummary *ResultSummary      `json:"resultSummary,omitempty"` // Set when the entry becomes sent.
	ErrorMessage  string              `json:"error,omitempty"`         // Set when the entry becomes failed.
	DispatchedAt  *time.Time          `json:"dispatchedAt,omitempty"`  // When the dispatcher settled the entry.
}
