package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"pavilion/config"
	"pavilion/internal/domain/constants"
	"pavilion/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// StreamFieldEvent is the stream entry field holding the JSON encoded event
const StreamFieldEvent = "event"

// redisStreamPublisher implements EventPublisher by appending to a Redis stream
type redisStreamPublisher struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

// NewRedisClient connects to the Redis server named by the stream configuration
func NewRedisClient(ctx context.Context, cfg *config.RedisStreamConfig) (*redis.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis url is required for redis provider")
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return client, nil
}

// NewRedisStreamPublisher creates a publisher that XADDs events to the stream
func NewRedisStreamPublisher(client *redis.Client, stream string, logger *slog.Logger) service.EventPublisher {
	return &redisStreamPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

// PublishQueueEntryCreated appends the event to the stream
func (p *redisStreamPublisher) PublishQueueEntryCreated(ctx context.Context, event *service.QueueEntryCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	values := map[string]any{
		StreamFieldEvent:      string(data),
		constants.AttrEntryID: event.EntryID,
	}
	if event.RequestID != "" {
		values[constants.AttrRequestID] = event.RequestID
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to append to stream %s", p.stream)
	}

	p.logger.Info("[RedisStream] Event published",
		slog.String("stream", p.stream),
		slog.String("entry_id", event.EntryID),
		slog.String("stream_id", id),
	)

	return nil
}

func (p *redisStreamPublisher) Close() error {
	return errors.WithStack(p.client.Close())
}
