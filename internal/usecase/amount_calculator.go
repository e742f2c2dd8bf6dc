package usecase

import (
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/shopspring/decimal"
)

var millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// ComputeGrossAmount returns the amount to charge for a booking in integer
// currency units. A stored non-zero total price wins; otherwise the court's
// hourly rate is applied to the booked duration and rounded half away from
// zero to the unit.
func ComputeGrossAmount(booking *model.Booking, court *model.Court) int64 {
	if booking.HasTotalPrice() {
		return *booking.TotalPrice
	}
	if court == nil {
		return 0
	}

	millis := decimal.NewFromInt(booking.EndTime.Sub(booking.StartTime).Milliseconds())

	return millis.Mul(court.PricePerHour).Div(millisPerHour).Round(0).IntPart()
}
