package stream

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// streamClient is the subset of consumer group commands the consumer issues
type streamClient interface {
	CreateGroup(ctx context.Context, stream, group string) error
	ReadGroup(ctx context.Context, args *redis.XReadGroupArgs) ([]redis.XMessage, error)
	AutoClaim(ctx context.Context, args *redis.XAutoClaimArgs) ([]redis.XMessage, error)
	Ack(ctx context.Context, stream, group string, ids ...string) error
	DeliveryCount(ctx context.Context, stream, group, id string) (int64, error)
}

type redisStreamClient struct {
	client *redis.Client
}

func newRedisStreamClient(client *redis.Client) streamClient {
	return &redisStreamClient{client: client}
}

// CreateGroup creates the consumer group and the stream, tolerating an existing group
func (c *redisStreamClient) CreateGroup(ctx context.Context, stream, group string) error {
	err := c.client.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return errors.Wrapf(err, "failed to create consumer group %s", group)
	}

	return nil
}

// ReadGroup returns new messages of the first stream, or none when the block timed out
func (c *redisStreamClient) ReadGroup(ctx context.Context, args *redis.XReadGroupArgs) ([]redis.XMessage, error) {
	streams, err := c.client.XReadGroup(ctx, args).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(streams) == 0 {
		return nil, nil
	}

	return streams[0].Messages, nil
}

// AutoClaim takes over pending messages abandoned by crashed or failing consumers
func (c *redisStreamClient) AutoClaim(ctx context.Context, args *redis.XAutoClaimArgs) ([]redis.XMessage, error) {
	messages, _, err := c.client.XAutoClaim(ctx, args).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	return messages, errors.WithStack(err)
}

func (c *redisStreamClient) Ack(ctx context.Context, stream, group string, ids ...string) error {
	return errors.WithStack(c.client.XAck(ctx, stream, group, ids...).Err())
}

// DeliveryCount reports how many times a pending message has been delivered to the group
func (c *redisStreamClient) DeliveryCount(ctx context.Context, stream, group, id string) (int64, error) {
	pending, err := c.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: stream,
		Group:  group,
		Start:  id,
		End:    id,
		Count:  1,
	}).Result()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	return pending[0].RetryCount, nil
}
