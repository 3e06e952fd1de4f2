package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueStatus_IsSettled(t *testing.T) {
	assert.False(t, QueueStatusPending.IsSettled())
	assert.True(t, QueueStatusSent.IsSettled())
	assert.True(t, QueueStatusFailed.IsSettled())
	assert.False(t, QueueStatus("").IsSettled())
}
