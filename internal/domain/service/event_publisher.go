package service

import (
	"context"
	"time"

	"pavilion/internal/domain/entity"
)

// QueueEntryCreatedEvent signals a new queue entry to the dispatcher.
// It carries the entry fields so the dispatcher does not read the store first.
type QueueEntryCreatedEvent struct {
	RequestID    string                     `json:"request_id,omitempty"` // For distributed tracing
	EntryID      string                     `json:"entry_id"`
	Tokens       []string                   `json:"tokens"`
	Notification entity.NotificationPayload `json:"notification"`
	Status       entity.QueueStatus         `json:"status"`
	Timestamp    time.Time                  `json:"timestamp"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishQueueEntryCreated publishes an entry-created event for async dispatch
	PublishQueueEntryCreated(ctx context.Context, event *QueueEntryCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
