package publisher

import (
	"context"
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/event"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/messaging"
	"go.uber.org/zap"
)

type bookingEventPublisher struct {
	publisher messaging.Publisher
	logger    *zap.Logger
}

// NewBookingEventPublisher publishes booking events on the configured
// message bus, one topic per target status.
func NewBookingEventPublisher(publisher messaging.Publisher, logger *zap.Logger) event.Publisher {
	return &bookingEventPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *bookingEventPublisher) PublishBookingStatusChanged(ctx context.Context, evt event.BookingStatusChanged) error {
	topic := evt.Topic()

	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	p.logger.Debug("Booking event published",
		zap.String("topic", topic),
		zap.Int64("booking_id", evt.BookingID),
		zap.String("order_id", evt.OrderID))

	return nil
}
