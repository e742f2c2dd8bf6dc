package messaging

import (
	"context"
	"fmt"
)

// Publisher publishes JSON messages under a topic. Redis uses the topic as
// the channel name, AMQP as the routing key.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
	Close() error
}

// Driver names accepted by NewPublisher.
const (
	DriverNone  = "none"
	DriverRedis = "redis"
	DriverAMQP  = "amqp"
)

// Config selects and configures a publisher.
type Config struct {
	Driver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ChannelPrefix string

	AMQPURL      string
	AMQPExchange string
}

// NewPublisher builds the publisher named by cfg.Driver.
func NewPublisher(cfg Config) (Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return NopPublisher{}, nil
	case DriverRedis:
		return NewRedisPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ChannelPrefix)
	case DriverAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	default:
		return nil, fmt.Errorf("unsupported messaging driver: %s", cfg.Driver)
	}
}

// NopPublisher drops every message.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
