package postgres

import (
	"testing"
	"time"

	"pavilion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQueueEntryMapping_RoundTrip(t *testing.T) {
	dispatchedAt := time.Date(2026, 5, 1, 12, 0, 5, 0, time.UTC)
	entry := &entity.QueueEntry{
		ID:     uuid.New(),
		Tokens: []string{"tA", "tB"},
		Notification: entity.NotificationPayload{
			Title: "Nets moved",
			Body:  "Now at 6pm",
			Data:  map[string]string{"matchId": "m-7"},
		},
		Status:        entity.QueueStatusSent,
		Timestamp:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		ResultSummary: &entity.ResultSummary{SuccessCount: 1, FailureCount: 1},
		DispatchedAt:  &dispatchedAt,
	}

	entryM := fromQueueEntryDomain(entry)
	assert.Equal(t, entry.Timestamp, entryM.QueuedAt)
	assert.Equal(t, "sent", entryM.Status)

	assert.Equal(t, entry, toQueueEntryDomain(entryM))
	assert.Nil(t, toQueueEntryDomain(nil))
	assert.Nil(t, fromQueueEntryDomain(nil))
}

func TestDeviceTokenMapping_RoundTrip(t *testing.T) {
	token := &entity.DeviceToken{
		ID:        uuid.New(),
		UserID:    "u1",
		Token:     "tA",
		Platform:  "android",
		CreatedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, token, toDeviceTokenDomain(fromDeviceTokenDomain(token)))
}
