package repository

import (
	"context"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
)

// PaymentAttempt is the state written by a charge attempt.
type PaymentAttempt struct {
	BookingID   int64
	OrderID     string
	GrossAmount int64
}

// NotificationUpdate carries the notification fields to store. Nil fields
// keep their current value.
type NotificationUpdate struct {
	TransactionStatus *string
	PaymentType       *string
	FraudStatus       *string
	TransactionTime   *time.Time
}

// IsEmpty reports whether the update would change nothing.
func (u NotificationUpdate) IsEmpty() bool {
	return u.TransactionStatus == nil && u.PaymentType == nil &&
		u.FraudStatus == nil && u.TransactionTime == nil
}

type PaymentRepository interface {
	// UpsertAttempt creates or overwrites the payment row of a booking,
	// resetting its transaction status to PENDING, and returns the stored row.
	UpsertAttempt(ctx context.Context, attempt PaymentAttempt) (*model.Payment, error)

	// GetByOrderIDWithBooking returns nil, nil when the order id is unknown.
	GetByOrderIDWithBooking(ctx context.Context, orderID string) (*model.Payment, error)

	ApplyNotification(ctx context.Context, id int64, update NotificationUpdate) error
}
