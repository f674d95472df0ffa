package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// RedisPublisher mirrors pipeline events to a Redis pub/sub channel as JSON.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish implements repositories.EventPublisher
func (p *RedisPublisher) Publish(ctx context.Context, event entities.PipelineEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event to redis channel %s: %w", p.channel, err)
	}
	return nil
}
