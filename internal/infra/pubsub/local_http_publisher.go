package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"pavilion/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/notification-queue-sub"

// localHTTPPublisher implements EventPublisher by POSTing a Pub/Sub push envelope
// straight to the dispatcher, so development runs without a broker.
// Delivery happens in the background like a real push subscription.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	inflight   sync.WaitGroup
}

// PushEnvelope mirrors the body Google Pub/Sub sends to push subscriptions
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishQueueEntryCreated encodes the event and hands it to the local push endpoint
// without waiting for the dispatch to finish
func (p *localHTTPPublisher) PublishQueueEntryCreated(ctx context.Context, event *service.QueueEntryCreatedEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	envelope := PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	envelope.Message.MessageID = event.EntryID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		p.post(context.WithoutCancel(ctx), body, event)
	}()

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, event *service.QueueEntryCreatedEvent) {
	logger := p.logger.With(
		slog.String("endpoint", p.endpoint),
		slog.String("entry_id", event.EntryID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error("[LocalPubSub] Failed to build push request", slog.Any("error", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		logger.Error("[LocalPubSub] Push request failed", slog.Any("error", err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("[LocalPubSub] Dispatcher returned non-success status",
			slog.Int("status", resp.StatusCode),
		)
		return
	}

	logger.Info("[LocalPubSub] Event delivered")
}

// Close waits for in-flight pushes to finish
func (p *localHTTPPublisher) Close() error {
	p.inflight.Wait()
	return nil
}
