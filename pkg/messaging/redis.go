package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisPublisher struct {
	client *redis.Client
	prefix string
}

// NewRedisPublisher connects to redis and verifies the connection.
func NewRedisPublisher(addr, password string, db int, channelPrefix string) (Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return newRedisPublisher(client, channelPrefix), nil
}

func newRedisPublisher(client *redis.Client, channelPrefix string) *redisPublisher {
	return &redisPublisher{client: client, prefix: channelPrefix}
}

func (r *redisPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return r.client.Publish(ctx, r.prefix+topic, payload).Err()
}

func (r *redisPublisher) Close() error {
	return r.client.Close()
}
