// Package stream consumes queue entry events from a Redis stream consumer group.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"
	"time"

	"pavilion/config"
	"pavilion/internal/delivery"
	deliverycontext "pavilion/internal/delivery/context"
	"pavilion/internal/domain/constants"
	"pavilion/internal/domain/lifecycle"
	"pavilion/internal/domain/service"
	"pavilion/internal/errors"
	"pavilion/internal/infra/pubsub"
	"pavilion/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// retryDelay is the pause after a failed read before polling again
const retryDelay = time.Second

// ConsumerParams holds dependencies for the stream consumer
type ConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Client     *redis.Client
	DispatchUC usecase.DispatchUsecase
}

type consumer struct {
	client     streamClient
	cfg        config.RedisStreamConfig
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewConsumer creates the Redis stream consumer delivery
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	if params.Config.PubSub == nil || params.Config.PubSub.Redis == nil {
		return nil, errors.New("redis stream config is required for the stream consumer")
	}

	cfg := *params.Config.PubSub.Redis
	if cfg.Consumer == "" {
		cfg.Consumer = defaultConsumerName()
	}

	c := newConsumer(newRedisStreamClient(params.Client), cfg, params.Logger, params.DispatchUC)

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newConsumer(client streamClient, cfg config.RedisStreamConfig, logger *slog.Logger, dispatchUC usecase.DispatchUsecase) *consumer {
	return &consumer{
		client:     client,
		cfg:        cfg,
		logger:     logger,
		dispatchUC: dispatchUC,
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func defaultConsumerName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "dispatcher-" + uuid.NewString()[:8]
	}

	return host
}

// Serve reads the stream until stopped
func (c *consumer) Serve(ctx context.Context) error {
	defer close(c.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := c.client.CreateGroup(ctx, c.cfg.Stream, c.cfg.Group); err != nil {
		return err
	}

	c.logger.Info("Starting Redis stream consumer",
		slog.String("stream", c.cfg.Stream),
		slog.String("group", c.cfg.Group),
		slog.String("consumer", c.cfg.Consumer),
	)

	for ctx.Err() == nil {
		if err := c.poll(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("[Dispatcher] Stream read failed", slog.Any("error", err))
			sleep(ctx, retryDelay)
		}
	}

	return nil
}

// poll reclaims stale pending messages, then blocks for new ones
func (c *consumer) poll(ctx context.Context) error {
	claimed, err := c.client.AutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   c.cfg.Stream,
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		MinIdle:  c.cfg.ClaimMinIdle,
		Start:    "0-0",
		Count:    c.cfg.BatchSize,
	})
	if err != nil {
		return err
	}
	c.handleAll(ctx, claimed)

	messages, err := c.client.ReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    c.cfg.BatchSize,
		Block:    c.cfg.BlockTimeout,
	})
	if err != nil {
		return err
	}
	c.handleAll(ctx, messages)

	return nil
}

func (c *consumer) handleAll(ctx context.Context, messages []redis.XMessage) {
	for _, msg := range messages {
		if ctx.Err() != nil {
			return
		}
		c.handle(ctx, msg)
	}
}

// handle dispatches one message. Retryable failures stay pending for a later claim
// until MaxDeliveries is reached.
func (c *consumer) handle(ctx context.Context, msg redis.XMessage) {
	raw, _ := msg.Values[pubsub.StreamFieldEvent].(string)

	var event service.QueueEntryCreatedEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		c.logger.Error("[Dispatcher] Dropping malformed stream message",
			slog.String("stream_id", msg.ID),
			slog.Any("error", err),
		)
		c.ack(ctx, msg.ID)

		return
	}

	requestID := event.RequestID
	if attr, ok := msg.Values[constants.AttrRequestID].(string); ok && attr != "" {
		requestID = attr
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx, reqLogger := deliverycontext.WithTrace(ctx, c.logger, requestID)

	reqLogger.Info("[Dispatcher] Processing queue entry",
		slog.String("entry_id", event.EntryID),
		slog.String("stream_id", msg.ID),
		slog.Int("token_count", len(event.Tokens)),
	)

	if err := c.dispatchUC.Dispatch(ctx, &event); err != nil {
		retryable := errors.IsRetryable(err)
		reqLogger.Error("[Dispatcher] Failed to dispatch queue entry",
			slog.String("entry_id", event.EntryID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable && !c.exhausted(ctx, reqLogger, msg.ID) {
			return
		}
	}

	c.ack(ctx, msg.ID)
}

// exhausted reports whether the message has used up its deliveries and should be dropped
func (c *consumer) exhausted(ctx context.Context, logger *slog.Logger, id string) bool {
	deliveries, err := c.client.DeliveryCount(ctx, c.cfg.Stream, c.cfg.Group, id)
	if err != nil {
		logger.Warn("[Dispatcher] Failed to read delivery count",
			slog.String("stream_id", id),
			slog.Any("error", err),
		)

		return false
	}
	if c.cfg.MaxDeliveries <= 0 || deliveries < c.cfg.MaxDeliveries {
		return false
	}

	logger.Error("[Dispatcher] Giving up on stream message",
		slog.String("stream_id", id),
		slog.Int64("deliveries", deliveries),
	)

	return true
}

func (c *consumer) ack(ctx context.Context, id string) {
	if err := c.client.Ack(ctx, c.cfg.Stream, c.cfg.Group, id); err != nil {
		c.logger.Warn("[Dispatcher] Failed to ack stream message",
			slog.String("stream_id", id),
			slog.Any("error", err),
		)
	}
}

func (c *consumer) stop(ctx context.Context) error {
	c.logger.Info("Shutting down Redis stream consumer")
	c.stopOnce.Do(func() { close(c.stopCh) })

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
