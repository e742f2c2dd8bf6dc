package errors

import (
	"fmt"

	apperrors "github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/errors"
)

// PaymentError represents a failure of payment initiation or notification
// reconciliation.
type PaymentError struct {
	Type      string
	Message   string
	BookingID string
	OrderID   string
	Cause     error
}

// Payment error types
const (
	ErrTypeInvalidInput = "INVALID_INPUT"
	ErrTypeNotFound     = "NOT_FOUND"
	ErrTypeInvalidState = "INVALID_STATE"
	ErrTypeGateway      = "GATEWAY_ERROR"
	ErrTypePersistence  = "PERSISTENCE_ERROR"
)

var typeCodes = map[string]string{
	ErrTypeInvalidInput: apperrors.ErrInvalidArgument,
	ErrTypeNotFound:     apperrors.ErrNotFound,
	ErrTypeInvalidState: apperrors.ErrInvalidState,
	ErrTypeGateway:      apperrors.ErrGateway,
	ErrTypePersistence:  apperrors.ErrPersistence,
}

func (e *PaymentError) Error() string {
	ref := e.reference()
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s%s - %v", e.Type, e.Message, ref, e.Cause)
	}
	return fmt.Sprintf("%s: %s%s", e.Type, e.Message, ref)
}

func (e *PaymentError) reference() string {
	switch {
	case e.BookingID != "" && e.OrderID != "":
		return fmt.Sprintf(" (booking: %s, order: %s)", e.BookingID, e.OrderID)
	case e.BookingID != "":
		return fmt.Sprintf(" (booking: %s)", e.BookingID)
	case e.OrderID != "":
		return fmt.Sprintf(" (order: %s)", e.OrderID)
	}
	return ""
}

func (e *PaymentError) Unwrap() error {
	return e.Cause
}

// Code maps the error type onto the shared error code table.
func (e *PaymentError) Code() string {
	if code, ok := typeCodes[e.Type]; ok {
		return code
	}
	return apperrors.ErrInternal
}

// Retryable reports whether repeating the whole operation may succeed.
func (e *PaymentError) Retryable() bool {
	return e.Type == ErrTypePersistence
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(message string) *PaymentError {
	return &PaymentError{
		Type:    ErrTypeInvalidInput,
		Message: message,
	}
}

// NewBookingNotFoundError is returned for a missing booking and for a booking
// owned by someone else alike.
func NewBookingNotFoundError(bookingID string) *PaymentError {
	return &PaymentError{
		Type:      ErrTypeNotFound,
		Message:   "booking not found",
		BookingID: bookingID,
	}
}

// NewBookingNotPendingError creates a new invalid state error
func NewBookingNotPendingError(bookingID, status string) *PaymentError {
	return &PaymentError{
		Type:      ErrTypeInvalidState,
		Message:   fmt.Sprintf("booking is %s, only PENDING bookings can be paid", status),
		BookingID: bookingID,
	}
}

// NewGatewayError creates a new gateway error
func NewGatewayError(bookingID, orderID string, cause error) *PaymentError {
	return &PaymentError{
		Type:      ErrTypeGateway,
		Message:   "payment gateway request failed",
		BookingID: bookingID,
		OrderID:   orderID,
		Cause:     cause,
	}
}

// NewPersistenceError creates a new persistence error
func NewPersistenceError(message string, cause error) *PaymentError {
	return &PaymentError{
		Type:    ErrTypePersistence,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err is a PaymentError of the given type.
func IsType(err error, errType string) bool {
	var payErr *PaymentError
	if apperrors.As(err, &payErr) {
		return payErr.Type == errType
	}
	return false
}

// IsRetryable reports whether err is a PaymentError worth repeating.
func IsRetryable(err error) bool {
	var payErr *PaymentError
	return apperrors.As(err, &payErr) && payErr.Retryable()
}
