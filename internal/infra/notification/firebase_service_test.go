package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender answers each multicast with a scripted response, recording the batches it saw
type fakeSender struct {
	batches [][]string
	fail    map[string]error
	err     error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.batches = append(f.batches, message.Tokens)

	response := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.fail[token]; ok {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		response.SuccessCount++
		response.Responses = append(response.Responses, &messaging.SendResponse{Success: true, MessageID: "msg-" + token})
	}

	return response, nil
}

func newTestService(sender multicastSender, batchSize int) *firebaseService {
	return newFirebaseService(sender, batchSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFirebaseService_SendMulticast_PositionalResponses(t *testing.T) {
	sender := &fakeSender{fail: map[string]error{"tB": errors.New("bad token")}}
	svc := newTestService(sender, 0)

	result, err := svc.SendMulticast(context.Background(), []string{"tA", "tB", "tC"}, entity.NotificationPayload{Title: "Nets", Body: "6pm"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Responses, 3)
	assert.True(t, result.Responses[0].Success)
	assert.Equal(t, "msg-tA", result.Responses[0].MessageID)
	assert.False(t, result.Responses[1].Success)
	assert.Equal(t, service.PushErrorUnknown, result.Responses[1].ErrorCode)
	assert.True(t, result.Responses[2].Success)
	assert.Len(t, sender.batches, 1)
}

func TestFirebaseService_SendMulticast_SplitsBatches(t *testing.T) {
	sender := &fakeSender{fail: map[string]error{"t4": errors.New("gone")}}
	svc := newTestService(sender, 2)

	tokens := []string{"t1", "t2", "t3", "t4", "t5"}
	result, err := svc.SendMulticast(context.Background(), tokens, entity.NotificationPayload{Title: "Match", Body: "Toss at 9"})

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"t1", "t2"}, {"t3", "t4"}, {"t5"}}, sender.batches)
	assert.Equal(t, 4, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Responses, len(tokens))
	assert.False(t, result.Responses[3].Success)
}

func TestFirebaseService_SendMulticast_TransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("oauth2: cannot fetch token")}
	svc := newTestService(sender, 0)

	result, err := svc.SendMulticast(context.Background(), []string{"tA"}, entity.NotificationPayload{Title: "t", Body: "b"})

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "cannot fetch token")
}

func TestFirebaseService_SendMulticast_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender, 0)

	result, err := svc.SendMulticast(context.Background(), nil, entity.NotificationPayload{})

	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, sender.batches)
}

func TestBuildMulticastMessage_Icon(t *testing.T) {
	payload := entity.NotificationPayload{
		Title: "Booking confirmed",
		Body:  "Ground 2, Saturday 10am",
		Icon:  "ic_ground",
		Data:  map[string]string{"bookingId": "b-42"},
	}

	message := buildMulticastMessage([]string{"tA"}, payload)

	assert.Equal(t, "Booking confirmed", message.Notification.Title)
	assert.Equal(t, "b-42", message.Data["bookingId"])
	require.NotNil(t, message.Android)
	assert.Equal(t, "ic_ground", message.Android.Notification.Icon)
	require.NotNil(t, message.Webpush)
	assert.Equal(t, "ic_ground", message.Webpush.Notification.Icon)

	plain := buildMulticastMessage([]string{"tA"}, entity.NotificationPayload{Title: "t", Body: "b"})
	assert.Nil(t, plain.Android)
	assert.Nil(t, plain.Webpush)
}
