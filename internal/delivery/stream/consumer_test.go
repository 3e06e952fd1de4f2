package stream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pavilion/config"
	"pavilion/internal/domain/constants"
	"pavilion/internal/domain/service"
	"pavilion/internal/errors"
	mockUsecase "pavilion/internal/mocks/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeStreamClient struct {
	mu         sync.Mutex
	batches    [][]redis.XMessage
	claimed    []redis.XMessage
	acked      []string
	groups     int
	deliveries map[string]int64
	countErr   error
}

func (f *fakeStreamClient) CreateGroup(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups++

	return nil
}

func (f *fakeStreamClient) ReadGroup(ctx context.Context, _ *redis.XReadGroupArgs) ([]redis.XMessage, error) {
	f.mu.Lock()
	if len(f.batches) > 0 {
		batch := f.batches[0]
		f.batches = f.batches[1:]
		f.mu.Unlock()

		return batch, nil
	}
	f.mu.Unlock()

	// Simulate a blocking read that times out
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Millisecond):
	}

	return nil, nil
}

func (f *fakeStreamClient) AutoClaim(_ context.Context, _ *redis.XAutoClaimArgs) ([]redis.XMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	claimed := f.claimed
	f.claimed = nil

	return claimed, nil
}

func (f *fakeStreamClient) Ack(_ context.Context, _, _ string, ids ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, ids...)

	return nil
}

func (f *fakeStreamClient) DeliveryCount(_ context.Context, _, _, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	if count, ok := f.deliveries[id]; ok {
		return count, nil
	}

	return 1, nil
}

func (f *fakeStreamClient) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.acked...)
}

func newTestConsumer(t *testing.T, client streamClient) (*consumer, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	cfg := config.RedisStreamConfig{
		Stream:       "notification-queue",
		Group:        "dispatcher",
		Consumer:     "test",
		BlockTimeout: 10 * time.Millisecond,
		ClaimMinIdle: time.Minute,
		BatchSize:    10,

		MaxDeliveries: 3,
	}

	return newConsumer(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), dispatchUC), dispatchUC
}

func streamMessage(t *testing.T, id string, event *service.QueueEntryCreatedEvent) redis.XMessage {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	return redis.XMessage{
		ID: id,
		Values: map[string]any{
			"event":               string(data),
			constants.AttrEntryID: event.EntryID,
		},
	}
}

func TestConsumer_Handle(t *testing.T) {
	event := &service.QueueEntryCreatedEvent{EntryID: "e-1", Tokens: []string{"tA"}}

	tests := []struct {
		name     string
		dispatch error
		wantAck  bool
	}{
		{name: "success acks", wantAck: true},
		{name: "permanent failure acks", dispatch: errors.New("invalid entry id"), wantAck: true},
		{name: "retryable failure stays pending", dispatch: errors.Retryable(errors.New("fcm unavailable")), wantAck: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeStreamClient{}
			c, dispatchUC := newTestConsumer(t, client)
			dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, got *service.QueueEntryCreatedEvent) error {
					assert.Equal(t, "e-1", got.EntryID)

					return tt.dispatch
				})

			c.handle(context.Background(), streamMessage(t, "1-0", event))

			if tt.wantAck {
				assert.Equal(t, []string{"1-0"}, client.ackedIDs())
			} else {
				assert.Empty(t, client.ackedIDs())
			}
		})
	}
}

func TestConsumer_HandleRetryableFailureDeliveryLimit(t *testing.T) {
	event := &service.QueueEntryCreatedEvent{EntryID: "e-1", Tokens: []string{"tA"}}

	tests := []struct {
		name       string
		deliveries int64
		countErr   error
		wantAck    bool
	}{
		{name: "below limit stays pending", deliveries: 2, wantAck: false},
		{name: "at limit is dropped", deliveries: 3, wantAck: true},
		{name: "over limit is dropped", deliveries: 7, wantAck: true},
		{name: "unknown count stays pending", countErr: errors.New("connection refused"), wantAck: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeStreamClient{
				deliveries: map[string]int64{"1-0": tt.deliveries},
				countErr:   tt.countErr,
			}
			c, dispatchUC := newTestConsumer(t, client)
			dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
				Return(errors.Retryable(errors.New("fcm unavailable")))

			c.handle(context.Background(), streamMessage(t, "1-0", event))

			if tt.wantAck {
				assert.Equal(t, []string{"1-0"}, client.ackedIDs())
			} else {
				assert.Empty(t, client.ackedIDs())
			}
		})
	}
}

func TestConsumer_HandleMalformedMessage(t *testing.T) {
	client := &fakeStreamClient{}
	c, _ := newTestConsumer(t, client)

	c.handle(context.Background(), redis.XMessage{ID: "2-0", Values: map[string]any{"event": "{"}})

	assert.Equal(t, []string{"2-0"}, client.ackedIDs())
}

func TestConsumer_ServeProcessesClaimedAndNewMessages(t *testing.T) {
	client := &fakeStreamClient{
		claimed: []redis.XMessage{streamMessage(t, "1-0", &service.QueueEntryCreatedEvent{EntryID: "stale"})},
		batches: [][]redis.XMessage{
			{streamMessage(t, "2-0", &service.QueueEntryCreatedEvent{EntryID: "fresh"})},
		},
	}
	c, dispatchUC := newTestConsumer(t, client)

	dispatched := make(chan string, 2)
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.QueueEntryCreatedEvent) error {
			dispatched <- event.EntryID

			return nil
		}).Times(2)

	served := make(chan error, 1)
	go func() { served <- c.Serve(context.Background()) }()

	assert.Equal(t, "stale", <-dispatched)
	assert.Equal(t, "fresh", <-dispatched)

	require.NoError(t, c.stop(context.Background()))
	require.NoError(t, <-served)

	assert.Equal(t, []string{"1-0", "2-0"}, client.ackedIDs())
	assert.Equal(t, 1, client.groups)
}
