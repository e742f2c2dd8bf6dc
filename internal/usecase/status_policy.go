package usecase

import (
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
)

// Gateway transaction statuses that move a booking.
const (
	TransactionCapture    = "capture"
	TransactionSettlement = "settlement"
	TransactionExpire     = "expire"
	TransactionCancel     = "cancel"
	TransactionDeny       = "deny"
)

// NextBookingStatus maps a gateway transaction status onto a booking status.
// Statuses outside the mapping leave the booking where it is.
func NextBookingStatus(transactionStatus string, current model.BookingStatus) model.BookingStatus {
	switch transactionStatus {
	case TransactionCapture, TransactionSettlement:
		return model.BookingStatusPaid
	case TransactionExpire:
		return model.BookingStatusExpired
	case TransactionCancel, TransactionDeny:
		return model.BookingStatusCancelled
	default:
		return current
	}
}

// TransitionPolicy decides whether reconciliation may move a booking.
type TransitionPolicy string

const (
	// TransitionMonotonic only moves a booking to a strictly higher rank, so
	// a late cancel or expire never undoes a payment.
	TransitionMonotonic TransitionPolicy = "monotonic"
	// TransitionOverwrite applies every mapped status change.
	TransitionOverwrite TransitionPolicy = "overwrite"
)

// ParseTransitionPolicy validates a configured policy name.
func ParseTransitionPolicy(name string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(name); p {
	case TransitionMonotonic, TransitionOverwrite:
		return p, nil
	case "":
		return TransitionMonotonic, nil
	default:
		return "", fmt.Errorf("unknown transition policy: %s", name)
	}
}

// statuses not managed by the payment flow rank above everything so they
// are never overwritten under the monotonic policy.
const unmanagedRank = 3

func statusRank(s model.BookingStatus) int {
	switch s {
	case model.BookingStatusPending:
		return 0
	case model.BookingStatusExpired, model.BookingStatusCancelled:
		return 1
	case model.BookingStatusPaid:
		return 2
	default:
		return unmanagedRank
	}
}

// Allows reports whether a booking may move from one status to another.
func (p TransitionPolicy) Allows(from, to model.BookingStatus) bool {
	if from == to {
		return false
	}
	if p == TransitionOverwrite {
		return true
	}
	return statusRank(to) > statusRank(from)
}
