package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the Pub/Sub channel used when none is configured.
const DefaultChannel = "gophmatch.matches"

// redisConn is the part of *redis.Client the publisher needs.
type redisConn interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher publishes JSON match events on a Redis Pub/Sub channel.
type RedisPublisher struct {
	client  redisConn
	channel string
}

// newRedisClient is a seam for tests.
var newRedisClient = func(opts *redis.Options) redisConn {
	return redis.NewClient(opts)
}

// NewRedisPublisher connects to addr and verifies the connection with PING.
func NewRedisPublisher(ctx context.Context, addr, password string, db int, channel string) (*RedisPublisher, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	client := newRedisClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	return &RedisPublisher{client: client, channel: channel}, nil
}

func (p *RedisPublisher) PublishMatch(ctx context.Context, ev MatchEvent) error {
	payload, err := ev.Marshal()
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish error: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
