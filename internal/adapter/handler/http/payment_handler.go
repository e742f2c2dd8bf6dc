package http

import (
	"context"
	"net/http"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/dto"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/middleware/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PaymentInitiator starts a payment for a booking.
type PaymentInitiator interface {
	Initiate(ctx context.Context, req dto.InitiatePaymentRequest) (*dto.InitiatePaymentResult, error)
}

type PaymentHandler struct {
	initiator PaymentInitiator
	logger    *zap.Logger
}

func NewPaymentHandler(initiator PaymentInitiator, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		initiator: initiator,
		logger:    logger,
	}
}

// CreateBookingPayment handles POST /api/v1/payments/bookings/:bookingId
func (h *PaymentHandler) CreateBookingPayment(c echo.Context) error {
	req := dto.InitiatePaymentRequest{BookingID: c.Param("bookingId")}

	// Without an authenticated user the requester stays empty and the
	// booking is reported as not found.
	if user, err := auth.GetUserFromContext(c); err == nil {
		req.RequesterID = user.UserID
		req.RequesterEmail = user.Email
	}

	h.logger.Info("Creating booking payment",
		zap.String("booking_id", req.BookingID),
		zap.String("user_id", req.RequesterID))

	result, err := h.initiator.Initiate(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Failed to create booking payment",
			zap.String("booking_id", req.BookingID),
			zap.String("user_id", req.RequesterID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Payment created",
		"data":    result,
	})
}
