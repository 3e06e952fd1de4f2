package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	base := New("fcm unavailable")

	wrapped := Wrap(Retryable(base), "dispatch entry")

	assert.True(t, IsRetryable(wrapped))
	assert.True(t, Is(wrapped, base))
	assert.Contains(t, wrapped.Error(), "retryable: fcm unavailable")
}

func TestRetryable_Nil(t *testing.T) {
	assert.NoError(t, Retryable(nil))
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(New("plain")))
}
