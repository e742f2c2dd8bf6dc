package event

import (
	"context"
	"strings"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
)

// BookingStatusChanged is emitted after reconciliation moves a booking.
type BookingStatusChanged struct {
	BookingID         int64               `json:"booking_id"`
	PaymentID         int64               `json:"payment_id"`
	OrderID           string              `json:"order_id"`
	From              model.BookingStatus `json:"from"`
	To                model.BookingStatus `json:"to"`
	TransactionStatus string              `json:"transaction_status"`
	OccurredAt        time.Time           `json:"occurred_at"`
}

// Topic returns the routing key, e.g. booking.paid.
func (e BookingStatusChanged) Topic() string {
	return "booking." + strings.ToLower(string(e.To))
}

// Publisher delivers booking events to interested services.
type Publisher interface {
	PublishBookingStatusChanged(ctx context.Context, evt BookingStatusChanged) error
}
