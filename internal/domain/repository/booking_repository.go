package repository

import (
	"context"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
)

type BookingRepository interface {
	// GetWithCourtAndUser loads a booking with its court and owner. It returns
	// nil, nil when the booking does not exist.
	GetWithCourtAndUser(ctx context.Context, id int64) (*model.Booking, error)

	UpdateTotalPrice(ctx context.Context, id int64, totalPrice int64) error

	// UpdateStatusIfCurrent moves a booking from one status to another and
	// reports whether the row was still in the expected status.
	UpdateStatusIfCurrent(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error)
}
