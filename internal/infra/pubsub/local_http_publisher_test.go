package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pavilion/internal/domain/constants"
	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishQueueEntryCreated(t *testing.T) {
	type pushRequest struct {
		requestID string
		envelope  PushEnvelope
	}
	received := make(chan pushRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var envelope PushEnvelope
		_ = json.NewDecoder(r.Body).Decode(&envelope)
		w.WriteHeader(http.StatusOK)
		received <- pushRequest{requestID: r.Header.Get("X-Request-Id"), envelope: envelope}
	}))
	defer server.Close()

	event := &service.QueueEntryCreatedEvent{
		RequestID:    "req-1",
		EntryID:      "0190a1b2-0000-7000-8000-000000000001",
		Tokens:       []string{"tA", "tB"},
		Notification: entity.NotificationPayload{Title: "Nets", Body: "6pm"},
		Status:       entity.QueueStatusPending,
		Timestamp:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishQueueEntryCreated(context.Background(), event))
	require.NoError(t, publisher.Close())

	var got pushRequest
	select {
	case got = <-received:
	case <-time.After(time.Second):
		t.Fatal("push request was not delivered")
	}

	assert.Equal(t, "req-1", got.requestID)
	assert.Equal(t, event.EntryID, got.envelope.Message.MessageID)
	assert.Equal(t, event.EntryID, got.envelope.Message.Attributes[constants.AttrEntryID])
	assert.Equal(t, "req-1", got.envelope.Message.Attributes[constants.AttrRequestID])

	data, err := base64.StdEncoding.DecodeString(got.envelope.Message.Data)
	require.NoError(t, err)

	var decoded service.QueueEntryCreatedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Tokens, decoded.Tokens)
	assert.Equal(t, event.Notification, decoded.Notification)
}

func TestLocalHTTPPublisher_NonSuccessStatusIsNotReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishQueueEntryCreated(context.Background(), &service.QueueEntryCreatedEvent{EntryID: "e1"})

	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_UnreachableEndpointIsNotReturned(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	publisher := NewLocalHTTPPublisher(endpoint, discardLogger())
	err := publisher.PublishQueueEntryCreated(context.Background(), &service.QueueEntryCreatedEvent{EntryID: "e1"})

	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_ReturnsBeforeDispatchCompletes(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	var releaseOnce sync.Once
	releaseHandler := func() { releaseOnce.Do(func() { close(release) }) }
	defer releaseHandler()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	err := publisher.PublishQueueEntryCreated(ctx, &service.QueueEntryCreatedEvent{EntryID: "e1"})
	require.NoError(t, err)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("push request was not sent")
	}

	// the caller going away must not abort the in-flight push
	cancel()

	closed := make(chan struct{})
	go func() {
		_ = publisher.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while the push was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	releaseHandler()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the push completed")
	}
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attributes := eventAttributes(&service.QueueEntryCreatedEvent{EntryID: "e1"})

	assert.Equal(t, map[string]string{constants.AttrEntryID: "e1"}, attributes)
}
