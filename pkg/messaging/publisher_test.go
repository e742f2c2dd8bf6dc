package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_None(t *testing.T) {
	for _, driver := range []string{"", DriverNone} {
		pub, err := NewPublisher(Config{Driver: driver})
		require.NoError(t, err)
		assert.IsType(t, NopPublisher{}, pub)
		assert.NoError(t, pub.Publish(context.Background(), "booking.paid", map[string]int{"booking_id": 5}))
		assert.NoError(t, pub.Close())
	}
}

func TestNewPublisher_UnsupportedDriver(t *testing.T) {
	pub, err := NewPublisher(Config{Driver: "kafka"})
	assert.Nil(t, pub)
	assert.EqualError(t, err, "unsupported messaging driver: kafka")
}

func TestRedisPublisher_MarshalError(t *testing.T) {
	pub := newRedisPublisher(nil, "sportfy.")

	err := pub.Publish(context.Background(), "booking.paid", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}
